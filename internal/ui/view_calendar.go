package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/dates"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// buildCalendarView renders the whole Ramadan window as a day grid. Tapping
// a day selects it and jumps to the daily tab.
func (app *RamadanApp) buildCalendarView() view {
	content := container.NewVBox()
	scroll := container.NewVScroll(content)

	var refresh func()
	refresh = func() {
		s := app.Store.Settings()
		keys := dates.RamadanDateKeys(s.RamadanStartDate, s.RamadanDays)
		today := app.Store.Today()

		grid := container.NewGridWithColumns(5)
		for i, dk := range keys {
			key := dk
			label := fmt.Sprintf("%d", i+1)
			if marker := app.dayMarker(key); marker != "" {
				label += " " + marker
			}

			btn := widget.NewButton(label, func() {
				app.Store.SetSelectedDate(key)
				if app.tabs != nil {
					app.tabs.SelectIndex(0)
				}
			})
			if key == today {
				btn.Importance = widget.HighImportance
			}
			grid.Add(btn)
		}

		title := widget.NewLabel(app.GetMsg(config.TKeyTabCalendar))
		title.Alignment = fyne.TextAlignCenter
		title.TextStyle = fyne.TextStyle{Bold: true}

		content.Objects = []fyne.CanvasObject{title, grid}
		content.Refresh()
	}
	refresh()

	return view{content: scroll, refresh: refresh}
}

// dayMarker summarizes a day's tracking at a glance: fasted, all fardh done.
func (app *RamadanApp) dayMarker(dk string) string {
	marker := ""
	if app.Store.Fasting(dk).Status == store.FastingFasted {
		marker += "●"
	}
	if app.Store.AllFardhDone(dk) {
		marker += "✓"
	}
	return marker
}
