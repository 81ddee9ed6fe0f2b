package ui

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// buildSettingsView renders profile editing, app preferences, and the
// export/import/reset data management block.
func (app *RamadanApp) buildSettingsView() view {
	content := container.NewVBox()
	scroll := container.NewVScroll(content)

	var refresh func()
	refresh = func() {
		content.Objects = []fyne.CanvasObject{
			app.profileCard(),
			app.preferencesCard(),
			app.dataCard(),
		}
		content.Refresh()
	}
	refresh()

	return view{content: scroll, refresh: refresh}
}

// profileCard edits the domain settings; saving re-fetches prayer times
// because city, country, method, or window may all have changed.
func (app *RamadanApp) profileCard() fyne.CanvasObject {
	s := app.Store.Settings()

	nameEntry := widget.NewEntry()
	nameEntry.SetText(s.Name)
	cityEntry := widget.NewEntry()
	cityEntry.SetText(s.City)
	countryEntry := widget.NewEntry()
	countryEntry.SetText(s.Country)

	methodLabels := make([]string, len(config.CalcMethods))
	for i, m := range config.CalcMethods {
		methodLabels[i] = m.Label
	}
	methodSelect := widget.NewSelect(methodLabels, nil)
	methodSelect.SetSelected(config.MethodLabel(s.CalculationMethod))

	startEntry := widget.NewEntry()
	startEntry.SetText(s.RamadanStartDate)

	daysSelect := widget.NewSelect([]string{"29", "30"}, nil)
	daysSelect.SetSelected(strconv.Itoa(s.RamadanDays))

	currencyEntry := widget.NewEntry()
	currencyEntry.SetText(s.Currency)

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblName), nameEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblCity), cityEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblCountry), countryEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblMethod), methodSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblStartDate), startEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDayCount), daysSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblCurrency), currencyEntry),
	)

	save := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		method := app.methodIDForLabel(methodSelect.Selected)
		days, err := strconv.Atoi(daysSelect.Selected)
		if err != nil {
			days = config.DefaultRamadanDays
		}

		app.invalidateFetches()
		app.Store.UpdateSettings(store.SettingsPatch{
			Name:              &nameEntry.Text,
			City:              &cityEntry.Text,
			Country:           &countryEntry.Text,
			CalculationMethod: &method,
			RamadanStartDate:  &startEntry.Text,
			RamadanDays:       &days,
			Currency:          &currencyEntry.Text,
		})

		go app.syncPrayerTimes()
		go app.syncDailyVerse()
	})
	save.Importance = widget.HighImportance

	return widget.NewCard(app.GetMsg(config.TKeyTabSettings), "",
		container.NewVBox(form, save))
}

// preferencesCard covers session preferences: language, feed port, theme.
func (app *RamadanApp) preferencesCard() fyne.CanvasObject {
	langSelect := widget.NewSelect(app.SupportedLanguages, nil)
	langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))
	langSelect.OnChanged = func(lang string) {
		app.Preferences.SetString(config.PrefLanguage, lang)
		app.UpdateLocalizer()
		app.buildContent()
	}

	portEntry := NewNumericalEntry()
	portEntry.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	portEntry.Validator = func(s string) error {
		if s == "" {
			return errors.New(app.GetMsg(config.TKeyErrPortReq))
		}
		port, err := strconv.Atoi(s)
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrPortNum))
		}
		if port < config.MinPort || port > config.MaxPort {
			return errors.New(app.GetMsg(config.TKeyErrPortRange))
		}
		return nil
	}
	portEntry.OnChanged = func(s string) {
		if portEntry.Validate() == nil {
			// Takes effect on next start; the running listener keeps its port.
			app.Preferences.SetString(config.PrefServerPort, s)
		}
	}

	darkCheck := widget.NewCheck(app.GetMsg(config.TKeyLblDarkMode), nil)
	darkCheck.Checked = app.Store.DarkMode()
	darkCheck.OnChanged = func(bool) {
		app.Store.ToggleDarkMode()
		app.applyTheme()
	}

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), portEntry)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), langSelect),
		itemPort,
	)

	return widget.NewCard("", "", container.NewVBox(form, darkCheck))
}

// dataCard is the export/import/reset block.
func (app *RamadanApp) dataCard() fyne.CanvasObject {
	export := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DownloadIcon(), func() {
		d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer func() { _ = wc.Close() }()

			data, err := app.Store.ExportData()
			if err != nil {
				dialog.ShowError(err, app.Window)
				return
			}
			if _, err := wc.Write(data); err != nil {
				dialog.ShowError(err, app.Window)
			}
		}, app.Window)
		d.SetFileName(config.ExportFileName)
		d.Show()
	})

	importBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.UploadIcon(), func() {
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			defer func() { _ = rc.Close() }()

			data, err := io.ReadAll(rc)
			if err != nil {
				dialog.ShowError(err, app.Window)
				return
			}

			app.invalidateFetches()
			if !app.Store.ImportData(data) {
				dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrImport)), app.Window)
				return
			}

			dialog.ShowInformation(config.AppName, app.GetMsg(config.TKeyMsgImportOK), app.Window)
			app.applyTheme()
			app.buildContent()
			go app.syncPrayerTimes()
			go app.syncDailyVerse()
		}, app.Window)
		d.Show()
	})

	reset := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnResetAll), theme.DeleteIcon(), func() {
		dialog.ShowConfirm(config.AppName, app.GetMsg(config.TKeyConfirmReset), func(ok bool) {
			if !ok {
				return
			}
			slog.Info(config.MsgResetAll, config.LogKeyComponent, config.CompUI)
			app.invalidateFetches()
			app.Store.ResetAll()
			app.applyTheme()
			app.buildContent()
		}, app.Window)
	})
	reset.Importance = widget.DangerImportance

	return widget.NewCard("", "", container.NewVBox(export, importBtn, reset))
}
