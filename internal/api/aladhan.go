package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/dates"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// calendarResponse is the Al Adhan calendarByCity envelope.
type calendarResponse struct {
	Code   int           `json:"code"`
	Status string        `json:"status"`
	Data   []calendarDay `json:"data"`
}

type calendarDay struct {
	Timings store.PrayerTimes `json:"timings"`
	Date    struct {
		Gregorian struct {
			Date string `json:"date"` // DD-MM-YYYY
		} `json:"gregorian"`
	} `json:"date"`
}

// cleanTime strips the timezone annotation Al Adhan appends, turning
// "05:12 (GMT)" into "05:12".
func cleanTime(t string) string {
	if idx := strings.Index(t, " ("); idx != -1 {
		t = t[:idx]
	}
	return strings.TrimSpace(t)
}

// gregorianToKey converts Al Adhan's DD-MM-YYYY gregorian date into a
// DateKey. Malformed inputs return an empty key.
func gregorianToKey(d string) string {
	parts := strings.Split(d, "-")
	if len(parts) != 3 {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// FetchMonthTimes retrieves one PrayerTimes record per calendar day of the
// given month, keyed by DateKey, with every clock time stripped of its
// timezone suffix.
func (c *Client) FetchMonthTimes(ctx context.Context, city, country string, method, year, month int) (map[string]store.PrayerTimes, error) {
	slog.Info(config.MsgFetchTimes,
		config.LogKeyComponent, config.CompAPI,
		config.LogKeyCity, city,
		config.LogKeyCountry, country,
		config.LogKeyMethod, method,
		config.LogKeyYear, year,
		config.LogKeyMonth, month,
	)

	params := url.Values{}
	params.Set("city", city)
	params.Set("country", country)
	params.Set("method", fmt.Sprintf("%d", method))
	endpoint := fmt.Sprintf("%s/calendarByCity/%d/%d?%s", c.PrayerBase, year, month, params.Encode())

	var resp calendarResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Code != 200 {
		return nil, fmt.Errorf("%s: code=%d status=%s", config.ErrAPICode, resp.Code, resp.Status)
	}

	result := make(map[string]store.PrayerTimes, len(resp.Data))
	for _, day := range resp.Data {
		key := gregorianToKey(day.Date.Gregorian.Date)
		if key == "" {
			continue
		}
		result[key] = store.PrayerTimes{
			Fajr:    cleanTime(day.Timings.Fajr),
			Sunrise: cleanTime(day.Timings.Sunrise),
			Dhuhr:   cleanTime(day.Timings.Dhuhr),
			Asr:     cleanTime(day.Timings.Asr),
			Maghrib: cleanTime(day.Timings.Maghrib),
			Isha:    cleanTime(day.Timings.Isha),
		}
	}
	return result, nil
}

// FetchRamadanTimes covers the whole configured window. When the start date
// plus duration crosses a month boundary it issues a second lookup and merges
// the results.
func (c *Client) FetchRamadanTimes(ctx context.Context, city, country string, method int, startDate string, days int) (map[string]store.PrayerTimes, error) {
	start := dates.Parse(startDate)
	if start.IsZero() {
		return nil, fmt.Errorf("%s: invalid start date %q", config.ErrAPIRequest, startDate)
	}

	result, err := c.FetchMonthTimes(ctx, city, country, method, start.Year(), int(start.Month()))
	if err != nil {
		return nil, err
	}

	end := start.AddDate(0, 0, days-1)
	if end.Month() != start.Month() {
		next, err := c.FetchMonthTimes(ctx, city, country, method, end.Year(), int(end.Month()))
		if err != nil {
			return nil, err
		}
		for k, v := range next {
			result[k] = v
		}
	}

	return result, nil
}
