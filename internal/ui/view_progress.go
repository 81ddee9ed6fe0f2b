package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ramadan/internal/config"
)

// buildProgressView renders the aggregate completion ratios over the elapsed
// portion of the window.
func (app *RamadanApp) buildProgressView() view {
	content := container.NewVBox()
	scroll := container.NewVScroll(content)

	var refresh func()
	refresh = func() {
		p := app.Store.ComputeProgress(config.TotalPages)
		currency := app.Store.Settings().Currency

		ratio := func(n, d int) float64 {
			if d == 0 {
				return 0
			}
			return float64(n) / float64(d)
		}

		stat := func(titleKey, detail string, value float64) fyne.CanvasObject {
			bar := widget.NewProgressBar()
			bar.SetValue(value)
			label := widget.NewLabel(fmt.Sprintf("%s  %s", app.GetMsg(titleKey), detail))
			return container.NewVBox(label, bar)
		}

		header := widget.NewLabel(fmt.Sprintf("%s %d/%d",
			app.GetMsg(config.TKeyLblRamadanDay), p.DaysElapsed, p.TotalDays))
		header.Alignment = fyne.TextAlignCenter
		header.TextStyle = fyne.TextStyle{Bold: true}

		charity := widget.NewLabel(fmt.Sprintf("%s  %.2f %s (%d)",
			app.GetMsg(config.TKeyStatCharity), p.CharityTotal, currency, p.CharityCount))

		content.Objects = []fyne.CanvasObject{
			header,
			stat(config.TKeyStatFardh,
				fmt.Sprintf("%d/%d", p.FardhCompleted, p.FardhPossible),
				ratio(p.FardhCompleted, p.FardhPossible)),
			stat(config.TKeyStatFasting,
				fmt.Sprintf("%d/%d", p.DaysFasted, p.DaysElapsed),
				ratio(p.DaysFasted, p.DaysElapsed)),
			stat(config.TKeyStatQuran,
				fmt.Sprintf("%d/%d  (%d/%d %s)", p.PagesRead, p.TotalPages, p.JuzDone, config.TotalJuz, app.GetMsg(config.TKeyLblJuz)),
				ratio(p.PagesRead, p.TotalPages)),
			stat(config.TKeyStatDhikr,
				fmt.Sprintf("%d/%d", p.DhikrDaysComplete, p.DaysElapsed),
				ratio(p.DhikrDaysComplete, p.DaysElapsed)),
			stat(config.TKeyStatJournal,
				fmt.Sprintf("%d/%d", p.JournalDays, p.DaysElapsed),
				ratio(p.JournalDays, p.DaysElapsed)),
			charity,
		}
		content.Refresh()
	}
	refresh()

	return view{content: scroll, refresh: refresh}
}
