package ui

import (
	"errors"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// buildOnboarding renders the first-run form. Completing it flips the
// Onboarded flag and swaps the window over to the tabbed layout.
func (app *RamadanApp) buildOnboarding() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.Validator = func(s string) error {
		if s == "" {
			return errors.New(app.GetMsg(config.TKeyErrNameReq))
		}
		return nil
	}

	cityEntry := widget.NewEntry()
	cityEntry.Validator = func(s string) error {
		if s == "" {
			return errors.New(app.GetMsg(config.TKeyErrCityReq))
		}
		return nil
	}

	countryEntry := widget.NewEntry()

	methodLabels := make([]string, len(config.CalcMethods))
	for i, m := range config.CalcMethods {
		methodLabels[i] = m.Label
	}
	methodSelect := widget.NewSelect(methodLabels, nil)
	methodSelect.SetSelected(config.MethodLabel(config.DefaultMethodID))

	// Typing a country snaps the method to the locally common one; the user
	// can still override afterwards.
	countryEntry.OnChanged = func(country string) {
		if country == "" {
			return
		}
		methodSelect.SetSelected(config.MethodLabel(config.MethodForCountry(country)))
	}

	startEntry := widget.NewEntry()
	startEntry.SetText(config.DefaultStartDate)

	daysSelect := widget.NewSelect([]string{"29", "30"}, nil)
	daysSelect.SetSelected(strconv.Itoa(config.DefaultRamadanDays))

	currencyEntry := widget.NewEntry()
	currencyEntry.SetText(config.DefaultCurrency)

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblName), nameEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblCity), cityEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblCountry), countryEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblMethod), methodSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblStartDate), startEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDayCount), daysSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblCurrency), currencyEntry),
	)

	begin := widget.NewButton(app.GetMsg(config.TKeyBtnBegin), func() {
		if err := nameEntry.Validate(); err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if err := cityEntry.Validate(); err != nil {
			dialog.ShowError(err, app.Window)
			return
		}

		days, err := strconv.Atoi(daysSelect.Selected)
		if err != nil {
			days = config.DefaultRamadanDays
		}

		settings := store.Settings{
			Name:              nameEntry.Text,
			City:              cityEntry.Text,
			Country:           countryEntry.Text,
			CalculationMethod: app.methodIDForLabel(methodSelect.Selected),
			RamadanStartDate:  startEntry.Text,
			RamadanDays:       days,
			Currency:          currencyEntry.Text,
		}

		slog.Info(config.MsgOnboardingDone, config.LogKeyComponent, config.CompUI)
		app.invalidateFetches()
		app.Store.CompleteOnboarding(settings)

		app.buildContent()
		go app.syncPrayerTimes()
		go app.syncDailyVerse()
	})
	begin.Importance = widget.HighImportance

	title := widget.NewLabel(app.GetMsg(config.TKeyLblOnboardTitle))
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewPadded(container.NewVBox(title, form, begin))
}

// methodIDForLabel reverses the select label back to its method id.
func (app *RamadanApp) methodIDForLabel(label string) int {
	for _, m := range config.CalcMethods {
		if m.Label == label {
			return m.ID
		}
	}
	return config.DefaultMethodID
}
