// Package api implements the two read-only network lookups the tracker
// consumes: monthly prayer times from Al Adhan and the daily verse from
// AlQuran Cloud.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tartampluch/go-ramadan/internal/config"
)

// Client talks to both lookup services. The base URLs are exported so tests
// can point them at an httptest server.
type Client struct {
	HTTPClient *http.Client
	PrayerBase string
	QuranBase  string
}

// NewClient creates a client with the configured timeout and production
// endpoints.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: config.HTTPTimeout},
		PrayerBase: config.AladhanBaseURL,
		QuranBase:  config.AlQuranBaseURL,
	}
}

// getJSON issues a GET with the shared User-Agent and decodes the body into
// out. Only http and https endpoints are accepted; non-200 statuses are
// errors and body decoding happens only on success.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrAPIRequest, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return fmt.Errorf("%s: %s", config.ErrAPIScheme, u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrAPIRequest, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	slog.Debug(config.MsgAPIResponse,
		config.LogKeyComponent, config.CompAPI,
		config.LogKeyURL, rawURL,
		config.LogKeyStatus, resp.StatusCode,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %d", config.ErrAPIStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", config.ErrAPIDecode, err)
	}
	return nil
}
