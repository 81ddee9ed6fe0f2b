// Package ical renders the cached Ramadan prayer times as an iCalendar feed,
// one VEVENT per timed prayer per day.
package ical

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/dates"
	"github.com/tartampluch/go-ramadan/internal/prayer"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// Generator builds the feed. The clock is injected so DTSTAMP is testable.
type Generator struct {
	Clock store.Clock
}

// NewGenerator creates a Generator backed by the given clock.
func NewGenerator(clock store.Clock) *Generator {
	return &Generator{Clock: clock}
}

// Generate walks the configured Ramadan window and emits one event per timed
// prayer on every day that has cached clock times. Days without cached times
// are skipped silently; an empty window yields the minimal valid stub so feed
// clients never see an invalid calendar. Returns the encoded bytes and the
// event count.
func (g *Generator) Generate(settings store.Settings, times map[string]store.PrayerTimes) ([]byte, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(g.Clock.Now().UTC())

	count := 0
	for _, dk := range dates.RamadanDateKeys(settings.RamadanStartDate, settings.RamadanDays) {
		pt, ok := times[dk]
		if !ok {
			continue
		}
		day := dates.Parse(dk)
		if day.IsZero() {
			continue
		}

		for _, e := range dayEvents(day, dk, pt) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
			count++
		}
	}

	if count == 0 {
		var buf bytes.Buffer
		fmt.Fprint(&buf, config.StubVCalendar)
		return buf.Bytes(), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgFeedUpdated,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeyCount, count,
	)
	return buf.Bytes(), count, nil
}

// dayEvents creates the timed-prayer events for one day. Unparseable clock
// strings are skipped.
func dayEvents(day time.Time, dateKey string, pt store.PrayerTimes) []*ical.Event {
	var events []*ical.Event
	for _, tp := range prayer.TimedPrayers {
		clock := clockFor(pt, tp.Field)
		minutes, ok := prayer.ParseClock(clock)
		if !ok {
			continue
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, time.Local)

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, dateKey, string(tp.Field), config.ICalDomain))
		event.Props.SetText(config.PropSummary, tp.Name)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDateTime(start.UTC())
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

func clockFor(pt store.PrayerTimes, f store.PrayerField) string {
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
