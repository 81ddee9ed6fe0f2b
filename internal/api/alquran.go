package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// ayahResponse is the AlQuran Cloud single-ayah envelope.
type ayahResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Number int    `json:"number"`
		Text   string `json:"text"`
		Surah  struct {
			Number      int    `json:"number"`
			Name        string `json:"name"`
			EnglishName string `json:"englishName"`
		} `json:"surah"`
		NumberInSurah int `json:"numberInSurah"`
	} `json:"data"`
}

// AyahForDay maps a Ramadan day number to its verse index. The stride spreads
// consecutive days across the whole text; the same day always yields the same
// index.
func AyahForDay(ramadanDay int) int {
	return (ramadanDay*config.AyahStride)%config.TotalAyahs + 1
}

// fetchAyah retrieves one ayah in one edition.
func (c *Client) fetchAyah(ctx context.Context, ayah int, edition string) (ayahResponse, error) {
	endpoint := fmt.Sprintf("%s/ayah/%d/%s", c.QuranBase, ayah, edition)

	var resp ayahResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return ayahResponse{}, err
	}
	if resp.Code != 200 {
		return ayahResponse{}, fmt.Errorf("%s: code=%d status=%s", config.ErrAPICode, resp.Code, resp.Status)
	}
	return resp, nil
}

// FetchDailyVerse resolves the verse index for the Ramadan day and fetches
// the Arabic and English editions in parallel, combining them into one record
// tagged with the DateKey it was fetched for.
func (c *Client) FetchDailyVerse(ctx context.Context, ramadanDay int, dateKey string) (store.DailyVerse, error) {
	ayah := AyahForDay(ramadanDay)

	slog.Info(config.MsgFetchVerse,
		config.LogKeyComponent, config.CompAPI,
		config.LogKeyDate, dateKey,
		config.LogKeyDay, ramadanDay,
		config.LogKeyAyah, ayah,
	)

	type result struct {
		resp ayahResponse
		err  error
	}
	arCh := make(chan result, 1)
	enCh := make(chan result, 1)

	go func() {
		r, err := c.fetchAyah(ctx, ayah, config.EditionArabic)
		arCh <- result{r, err}
	}()
	go func() {
		r, err := c.fetchAyah(ctx, ayah, config.EditionEnglish)
		enCh <- result{r, err}
	}()

	ar, en := <-arCh, <-enCh
	if ar.err != nil {
		return store.DailyVerse{}, ar.err
	}
	if en.err != nil {
		return store.DailyVerse{}, en.err
	}

	return store.DailyVerse{
		Number:           ayah,
		Arabic:           ar.resp.Data.Text,
		English:          en.resp.Data.Text,
		SurahName:        ar.resp.Data.Surah.Name,
		SurahEnglishName: ar.resp.Data.Surah.EnglishName,
		AyahNumber:       ar.resp.Data.NumberInSurah,
		FetchedDate:      dateKey,
	}, nil
}
