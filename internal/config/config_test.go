package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-ramadan/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"AladhanBaseURL", config.AladhanBaseURL},
		{"AlQuranBaseURL", config.AlQuranBaseURL},
		{"ICalProdid", config.ICalProdid},
		{"StateFileName", config.StateFileName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 30, config.DefaultRamadanDays)
	assert.Equal(t, 15, config.DefaultMethodID, "Default method must be Moonsighting Committee")
	assert.Equal(t, 30, config.TotalJuz)
	assert.Equal(t, 604, config.TotalPages)
	assert.Equal(t, 6236, config.TotalAyahs)

	// The stride must be coprime-ish enough that 30 consecutive days never
	// collide on the same ayah.
	seen := make(map[int]bool)
	for day := 1; day <= 30; day++ {
		idx := (day*config.AyahStride)%config.TotalAyahs + 1
		assert.False(t, seen[idx], "day %d collides on ayah %d", day, idx)
		seen[idx] = true
	}
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Ramadan/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Equal(t, 500*time.Millisecond, config.JournalDebounce)
	assert.Equal(t, 60*time.Second, config.TickInterval)
}

// TestMethodForCountry verifies the country recommendation table.
func TestMethodForCountry(t *testing.T) {
	tests := []struct {
		country  string
		expected int
	}{
		{"United States", 2},
		{"  pakistan ", 1},
		{"Turkey", 13},
		{"SINGAPORE", 11},
		{"Atlantis", 3}, // unknown falls back to MWL
		{"", 3},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.expected, config.MethodForCountry(tt.country))
		})
	}
}

// TestMethodLabel covers known and unknown ids.
func TestMethodLabel(t *testing.T) {
	assert.Equal(t, "Moonsighting Committee Worldwide", config.MethodLabel(15))
	assert.Equal(t, "Unknown", config.MethodLabel(99))
}
