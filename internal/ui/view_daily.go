package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/dates"
	"github.com/tartampluch/go-ramadan/internal/prayer"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// optionalPrayers are tracked but have no fixed clock time.
var optionalPrayers = []struct {
	Field store.PrayerField
	Name  string
}{
	{store.PrayerTarawih, "Tarawih"},
	{store.PrayerTahajjud, "Tahajjud"},
}

// buildDailyView renders the per-date tracking screen. The whole card stack
// is rebuilt on refresh; selectors are cheap and the layout stays simple.
func (app *RamadanApp) buildDailyView() view {
	content := container.NewVBox()
	scroll := container.NewVScroll(content)

	journalDebounce := NewDebouncer(config.JournalDebounce)

	var refresh func()
	refresh = func() {
		dk := app.Store.SelectedDate()
		content.Objects = []fyne.CanvasObject{
			app.dailyHeader(dk, refresh),
			app.verseCard(dk),
			app.prayersCard(dk, refresh),
			app.fastingCard(dk, refresh),
			app.quranCard(dk, refresh),
			app.dhikrCard(dk, refresh),
			app.journalCard(dk, journalDebounce),
			app.charityCard(dk, refresh),
		}
		content.Refresh()
	}
	refresh()

	return view{content: scroll, refresh: refresh}
}

// dailyHeader is the date navigation row plus the lookup-failure banner.
func (app *RamadanApp) dailyHeader(dk string, refresh func()) fyne.CanvasObject {
	shift := func(days int) {
		t := dates.Parse(dk)
		if t.IsZero() {
			return
		}
		app.Store.SetSelectedDate(dates.Key(t.AddDate(0, 0, days)))
		refresh()
	}

	prev := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { shift(-1) })
	next := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { shift(1) })

	dateLabel := widget.NewLabel(dates.DisplayLong(dk))
	dateLabel.Alignment = fyne.TextAlignCenter
	dateLabel.TextStyle = fyne.TextStyle{Bold: true}

	dayLabel := widget.NewLabel(app.ramadanDayLabel(dk))
	dayLabel.Alignment = fyne.TextAlignCenter

	header := container.NewVBox(
		container.NewBorder(nil, nil, prev, next, dateLabel),
		dayLabel,
	)

	if msg := app.Store.FetchError(); msg != "" {
		banner := widget.NewLabel(msg)
		banner.Importance = widget.DangerImportance
		banner.Alignment = fyne.TextAlignCenter
		header.Add(banner)
	}

	return header
}

// verseCard shows the cached daily verse when it matches the viewed date.
func (app *RamadanApp) verseCard(dk string) fyne.CanvasObject {
	verse := app.Store.VerseCache(dk)
	if verse == nil {
		return container.NewWithoutLayout()
	}

	arabic := widget.NewLabel(verse.Arabic)
	arabic.Wrapping = fyne.TextWrapWord
	arabic.Alignment = fyne.TextAlignTrailing

	english := widget.NewLabel(verse.English)
	english.Wrapping = fyne.TextWrapWord

	ref := widget.NewLabel(fmt.Sprintf("%s %d", verse.SurahEnglishName, verse.AyahNumber))
	ref.TextStyle = fyne.TextStyle{Italic: true}

	return widget.NewCard(app.GetMsg(config.TKeyLblVerse), "",
		container.NewVBox(arabic, english, ref))
}

// prayersCard lists the seven prayer checkboxes with the completion counter
// and the next-prayer countdown for today.
func (app *RamadanApp) prayersCard(dk string, refresh func()) fyne.CanvasObject {
	day := app.Store.Prayers(dk)
	completed, total := app.Store.PrayerCompletion(dk)

	rows := container.NewVBox()

	if banner := app.nextPrayerBanner(dk); banner != nil {
		rows.Add(banner)
	}

	addCheck := func(field store.PrayerField, name string) {
		check := widget.NewCheck(name, nil)
		check.Checked = day.Get(field)
		check.OnChanged = func(bool) {
			app.Store.TogglePrayer(dk, field)
			refresh()
		}
		rows.Add(check)
	}

	for _, tp := range prayer.TimedPrayers {
		label := tp.Name
		if pt, ok := app.Store.PrayerTimesFor(dk); ok {
			if clock := timedClock(pt, tp.Field); clock != "" {
				label = fmt.Sprintf("%s  %s", tp.Name, clock)
			}
		}
		addCheck(tp.Field, label)
	}
	for _, op := range optionalPrayers {
		addCheck(op.Field, op.Name)
	}

	if app.Store.AllFardhDone(dk) {
		done := widget.NewLabel(app.GetMsg(config.TKeyMsgAllPrayers))
		done.Importance = widget.SuccessImportance
		rows.Add(done)
	}

	title := fmt.Sprintf("%s  %d/%d", app.GetMsg(config.TKeyLblPrayers), completed, total)
	return widget.NewCard(title, "", rows)
}

// nextPrayerBanner shows the upcoming prayer countdown; only meaningful for
// the current calendar date.
func (app *RamadanApp) nextPrayerBanner(dk string) fyne.CanvasObject {
	if dk != app.Store.Today() {
		return nil
	}
	pt, ok := app.Store.PrayerTimesFor(dk)
	if !ok {
		return nil
	}

	now := app.Clock.Now()
	next := prayer.Next(pt, prayer.MinuteOfDay(now.Hour(), now.Minute()))
	if next == nil {
		return nil
	}

	banner := widget.NewLabel(fmt.Sprintf("%s: %s %s (%s)",
		app.GetMsg(config.TKeyLblNextPrayer), next.Name, next.Clock, next.Countdown))
	banner.TextStyle = fyne.TextStyle{Bold: true}
	return banner
}

func timedClock(pt store.PrayerTimes, f store.PrayerField) string {
	switch f {
	case store.PrayerFajr:
		return pt.Fajr
	case store.PrayerDhuhr:
		return pt.Dhuhr
	case store.PrayerAsr:
		return pt.Asr
	case store.PrayerMaghrib:
		return pt.Maghrib
	case store.PrayerIsha:
		return pt.Isha
	}
	return ""
}

// fastingCard holds the status radio and the suhoor/iftar time fields.
func (app *RamadanApp) fastingCard(dk string, refresh func()) fyne.CanvasObject {
	day := app.Store.Fasting(dk)

	options := []string{
		app.GetMsg(config.TKeyFastFasted),
		app.GetMsg(config.TKeyFastPartial),
		app.GetMsg(config.TKeyFastNot),
	}
	statusFor := map[string]store.FastingStatus{
		options[0]: store.FastingFasted,
		options[1]: store.FastingPartial,
		options[2]: store.FastingNotFasting,
	}

	radio := widget.NewRadioGroup(options, nil)
	for label, status := range statusFor {
		if status == day.Status {
			radio.Selected = label
		}
	}
	radio.OnChanged = func(selected string) {
		status, ok := statusFor[selected]
		if !ok {
			return
		}
		app.Store.SetFastingStatus(dk, status)
		refresh()
	}

	suhoor := widget.NewEntry()
	suhoor.SetText(day.SuhoorTime)
	suhoor.OnChanged = func(v string) {
		app.Store.SetFastingTime(dk, store.FastingSuhoor, v)
	}

	iftar := widget.NewEntry()
	iftar.SetText(day.IftarTime)
	iftar.OnChanged = func(v string) {
		app.Store.SetFastingTime(dk, store.FastingIftar, v)
	}

	times := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblSuhoor), suhoor),
		widget.NewFormItem(app.GetMsg(config.TKeyLblIftar), iftar),
	)

	return widget.NewCard(app.GetMsg(config.TKeyLblFasting), "",
		container.NewVBox(radio, times))
}

// quranCard tracks pages read for the date and the global juz checklist.
func (app *RamadanApp) quranCard(dk string, refresh func()) fyne.CanvasObject {
	pages := NewNumericalEntry()
	pages.SetText(strconv.Itoa(app.Store.QuranPages(dk)))
	pages.OnChanged = func(v string) {
		n, err := strconv.Atoi(v)
		if err != nil {
			n = 0
		}
		app.Store.SetQuranPages(dk, n)
	}

	pagesRow := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblPages), pages),
	)

	juz := app.Store.JuzCompleted()
	grid := container.NewGridWithColumns(6)
	for i := range juz {
		idx := i
		check := widget.NewCheck(strconv.Itoa(i+1), nil)
		check.Checked = juz[i]
		check.OnChanged = func(bool) {
			app.Store.ToggleJuz(idx)
			refresh()
		}
		grid.Add(check)
	}

	juzLabel := widget.NewLabel(app.GetMsg(config.TKeyLblJuz))

	return widget.NewCard(app.GetMsg(config.TKeyLblQuran), "",
		container.NewVBox(pagesRow, juzLabel, grid))
}

// dhikrCard lists the phrase counters plus the add/remove management row.
func (app *RamadanApp) dhikrCard(dk string, refresh func()) fyne.CanvasObject {
	rows := container.NewVBox()

	for _, item := range app.Store.DhikrItems() {
		it := item
		count := app.Store.DhikrCount(dk, it.ID)
		// Display clamps at the target; the stored count keeps climbing.
		shown := count
		if shown > it.Target {
			shown = it.Target
		}

		label := widget.NewLabel(fmt.Sprintf("%s  %s  %d/%d", it.Name, it.ArabicName, shown, it.Target))
		tap := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
			app.Store.IncrementDhikr(dk, it.ID)
			refresh()
		})
		reset := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
			app.Store.ResetDhikr(dk, it.ID)
			refresh()
		})
		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			app.Store.RemoveDhikrItem(it.ID)
			refresh()
		})

		rows.Add(container.NewBorder(nil, nil, nil, container.NewHBox(tap, reset, remove), label))
	}

	nameEntry := widget.NewEntry()
	nameEntry.PlaceHolder = app.GetMsg(config.TKeyLblName)
	targetEntry := NewNumericalEntry()
	targetEntry.PlaceHolder = "33"

	add := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnAdd), theme.ContentAddIcon(), func() {
		name := strings.TrimSpace(nameEntry.Text)
		target, err := strconv.Atoi(targetEntry.Text)
		if name == "" || err != nil || target <= 0 {
			return
		}
		app.Store.AddDhikrItem(name, "", target)
		refresh()
	})
	rows.Add(container.NewBorder(nil, nil, nil, add, container.NewGridWithColumns(2, nameEntry, targetEntry)))

	return widget.NewCard(app.GetMsg(config.TKeyLblDhikr), "", rows)
}

// clampRunes cuts s down to at most max characters. The limits are character
// counts; slicing bytes would cut Arabic text short and could split a
// multi-byte rune, leaving invalid UTF-8 in the store.
func clampRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// journalCard is the free-text reflection field, debounced into the store.
func (app *RamadanApp) journalCard(dk string, debounce *Debouncer) fyne.CanvasObject {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.SetMinRowsVisible(4)
	entry.SetText(app.Store.Journal(dk).Content)
	entry.OnChanged = func(content string) {
		text := clampRunes(content, config.JournalMaxLen)
		debounce.Schedule(func() {
			app.Store.UpdateJournal(dk, text)
		})
	}

	return widget.NewCard(app.GetMsg(config.TKeyLblJournal), "", entry)
}

// charityCard shows the donation log with the add form. Amount validation is
// a UI concern; the store records whatever it is given.
func (app *RamadanApp) charityCard(dk string, refresh func()) fyne.CanvasObject {
	currency := app.Store.Settings().Currency

	rows := container.NewVBox()
	var total float64
	for _, entry := range app.Store.CharityEntries() {
		e := entry
		total += e.Amount
		label := widget.NewLabel(fmt.Sprintf("%s  %.2f %s  %s", dates.DisplayShort(e.DateKey), e.Amount, currency, e.Note))
		remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
			app.Store.RemoveCharity(e.ID)
			refresh()
		})
		rows.Add(container.NewBorder(nil, nil, nil, remove, label))
	}

	amountEntry := widget.NewEntry()
	amountEntry.PlaceHolder = app.GetMsg(config.TKeyLblAmount)
	noteEntry := widget.NewEntry()
	noteEntry.PlaceHolder = app.GetMsg(config.TKeyLblNote)

	add := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnAdd), theme.ContentAddIcon(), func() {
		amount, err := strconv.ParseFloat(strings.TrimSpace(amountEntry.Text), 64)
		if err != nil || amount <= 0 {
			dialog.ShowError(fmt.Errorf("%s", app.GetMsg(config.TKeyErrAmountPos)), app.Window)
			return
		}
		note := clampRunes(noteEntry.Text, config.CharityNoteMaxLen)
		app.Store.AddCharity(amount, note, dk)
		refresh()
	})
	rows.Add(container.NewBorder(nil, nil, nil, add, container.NewGridWithColumns(2, amountEntry, noteEntry)))

	title := fmt.Sprintf("%s  %.2f %s", app.GetMsg(config.TKeyLblCharity), total, currency)
	return widget.NewCard(title, "", rows)
}
