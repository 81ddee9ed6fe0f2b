package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-ramadan/internal/api"
	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/dates"
	"github.com/tartampluch/go-ramadan/internal/ical"
	"github.com/tartampluch/go-ramadan/internal/server"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// RamadanApp encapsulates the UI state, preferences, and background logic.
type RamadanApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Store  *store.Store
	Client *api.Client
	Server *server.FeedServer
	Feed   *ical.Generator
	Clock  store.Clock

	SupportedLanguages []string

	// fetchSeq invalidates in-flight lookups. Every mutation that makes a
	// pending response irrelevant (settings change, reset, import) bumps it;
	// a response is only committed when its captured value still matches.
	fetchSeq atomic.Int64

	tabs        *container.AppTabs
	refreshView func()
}

// NewRamadanApp constructs the application and wires dependencies.
func NewRamadanApp(a fyne.App, ctx context.Context, st *store.Store, client *api.Client, srv *server.FeedServer) *RamadanApp {
	clock := store.RealClock{}
	return &RamadanApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Store:              st,
		Client:             client,
		Server:             srv,
		Feed:               ical.NewGenerator(clock),
		Clock:              clock,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the application services and the main UI loop.
func (app *RamadanApp) Run() {
	app.SetupI18n()
	app.applyTheme()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}()

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window.SetMaster()

	app.buildContent()

	go app.backgroundWorker()

	if app.Store.Settings().Onboarded {
		go app.syncPrayerTimes()
		go app.syncDailyVerse()
	}

	app.Window.Show()
	app.App.Run()
}

// buildContent swaps the window between the onboarding form and the main
// tabbed layout depending on store state.
func (app *RamadanApp) buildContent() {
	if !app.Store.Settings().Onboarded {
		app.Window.SetContent(app.buildOnboarding())
		return
	}

	daily := app.buildDailyView()
	calendar := app.buildCalendarView()
	progress := app.buildProgressView()
	settings := app.buildSettingsView()

	app.tabs = container.NewAppTabs(
		container.NewTabItem(app.GetMsg(config.TKeyTabDaily), daily.content),
		container.NewTabItem(app.GetMsg(config.TKeyTabCalendar), calendar.content),
		container.NewTabItem(app.GetMsg(config.TKeyTabProgress), progress.content),
		container.NewTabItem(app.GetMsg(config.TKeyTabSettings), settings.content),
	)

	views := []store.ViewID{store.ViewDaily, store.ViewCalendar, store.ViewProgress, store.ViewSettings}
	refreshers := []func(){daily.refresh, calendar.refresh, progress.refresh, settings.refresh}

	app.tabs.OnSelected = func(item *container.TabItem) {
		idx := app.tabs.SelectedIndex()
		if idx >= 0 && idx < len(views) {
			app.Store.SetActiveView(views[idx])
			refreshers[idx]()
		}
	}

	// Restore the persisted navigation pointer.
	for i, v := range views {
		if v == app.Store.ActiveView() {
			app.tabs.SelectIndex(i)
			break
		}
	}

	app.refreshView = func() {
		idx := app.tabs.SelectedIndex()
		if idx >= 0 && idx < len(refreshers) {
			refreshers[idx]()
		}
	}

	app.Window.SetContent(app.tabs)
}

// view pairs a rendered tab with its refresh hook.
type view struct {
	content fyne.CanvasObject
	refresh func()
}

// refreshActive re-renders the currently selected tab on the UI thread. A
// panic while rendering is contained: the window is rebuilt from store state
// instead of taking the process down.
func (app *RamadanApp) refreshActive() {
	if app.refreshView == nil {
		return
	}
	fyne.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error(config.ErrUIRecovered,
					config.LogKeyComponent, config.CompUI,
					config.LogKeyError, fmt.Sprint(r))
				app.buildContent()
			}
		}()
		app.refreshView()
	})
}

// applyTheme switches between light and dark variants from the persisted
// preference.
func (app *RamadanApp) applyTheme() {
	if app.Store.DarkMode() {
		app.App.Settings().SetTheme(newAppTheme(true))
	} else {
		app.App.Settings().SetTheme(newAppTheme(false))
	}
}

// backgroundWorker drives the once-a-minute tick: day-transition detection
// and countdown refresh.
func (app *RamadanApp) backgroundWorker() {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	log.Info(config.MsgWorkerStart)

	// Startup check: reopening the app on a new day snaps the view to today
	// without waiting for the first tick.
	if app.Store.CheckDayTransition() {
		go app.syncDailyVerse()
	}

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-ticker.C:
			if app.Store.CheckDayTransition() {
				go app.syncDailyVerse()
			}
			app.refreshActive()
		}
	}
}

// invalidateFetches marks every in-flight lookup stale.
func (app *RamadanApp) invalidateFetches() int64 {
	return app.fetchSeq.Add(1)
}

// syncPrayerTimes fetches the whole Ramadan window and merges it into the
// cache, then regenerates the ICS feed. A stale response (settings changed
// underneath) is dropped.
func (app *RamadanApp) syncPrayerTimes() {
	seq := app.fetchSeq.Load()
	s := app.Store.Settings()

	times, err := app.Client.FetchRamadanTimes(app.Ctx, s.City, s.Country, s.CalculationMethod, s.RamadanStartDate, s.RamadanDays)
	if err != nil {
		slog.Error(config.ErrAPIRequest,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		app.Store.SetFetchError(app.GetMsg(config.TKeyErrFetchTimes))
		app.refreshActive()
		return
	}

	if app.fetchSeq.Load() != seq {
		slog.Info(config.MsgFetchStale, config.LogKeyComponent, config.CompUI)
		return
	}

	app.Store.SetFetchError("")
	app.Store.MergePrayerTimes(times)
	app.updateFeed()
	app.refreshActive()
}

// syncDailyVerse fetches the verse for today's Ramadan day. Outside the
// window there is no verse to show.
func (app *RamadanApp) syncDailyVerse() {
	seq := app.fetchSeq.Load()
	s := app.Store.Settings()
	today := app.Store.Today()

	day := dates.RamadanDay(today, s.RamadanStartDate)
	if day < 1 || day > s.RamadanDays {
		return
	}

	verse, err := app.Client.FetchDailyVerse(app.Ctx, day, today)
	if err != nil {
		slog.Error(config.ErrAPIRequest,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		app.Store.SetFetchError(app.GetMsg(config.TKeyErrFetchVerse))
		app.refreshActive()
		return
	}

	if app.fetchSeq.Load() != seq {
		slog.Info(config.MsgFetchStale, config.LogKeyComponent, config.CompUI)
		return
	}

	app.Store.SetVerseCache(verse)
	app.refreshActive()
}

// updateFeed re-renders the ICS feed from the current cache and publishes it.
func (app *RamadanApp) updateFeed() {
	data, _, err := app.Feed.Generate(app.Store.Settings(), app.prayerTimesSnapshot())
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}
	app.Server.Update(data)
}

// prayerTimesSnapshot copies the cached times for the configured window.
func (app *RamadanApp) prayerTimesSnapshot() map[string]store.PrayerTimes {
	s := app.Store.Settings()
	out := make(map[string]store.PrayerTimes)
	for _, dk := range dates.RamadanDateKeys(s.RamadanStartDate, s.RamadanDays) {
		if pt, ok := app.Store.PrayerTimesFor(dk); ok {
			out[dk] = pt
		}
	}
	return out
}

// ramadanDayLabel renders "Day N of M" for a date inside the window, or the
// bare date otherwise.
func (app *RamadanApp) ramadanDayLabel(dateKey string) string {
	s := app.Store.Settings()
	day := dates.RamadanDay(dateKey, s.RamadanStartDate)
	if day >= 1 && day <= s.RamadanDays {
		return fmt.Sprintf("%s %d/%d", app.GetMsg(config.TKeyLblRamadanDay), day, s.RamadanDays)
	}
	return dates.DisplayShort(dateKey)
}
