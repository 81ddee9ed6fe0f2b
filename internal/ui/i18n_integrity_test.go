package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ramadan/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in both locale JSON files.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyTabDaily,
		config.TKeyTabCalendar,
		config.TKeyTabProgress,
		config.TKeyTabSettings,
		config.TKeyLblLanguage,
		config.TKeyLblName,
		config.TKeyLblCity,
		config.TKeyLblCountry,
		config.TKeyLblMethod,
		config.TKeyLblStartDate,
		config.TKeyLblDayCount,
		config.TKeyLblCurrency,
		config.TKeyLblPort,
		config.TKeyHelpPort,
		config.TKeyLblDarkMode,
		config.TKeyBtnBegin,
		config.TKeyBtnSave,
		config.TKeyBtnCancel,
		config.TKeyBtnAdd,
		config.TKeyBtnExport,
		config.TKeyBtnImport,
		config.TKeyBtnResetAll,
		config.TKeyLblPrayers,
		config.TKeyLblFasting,
		config.TKeyLblQuran,
		config.TKeyLblPages,
		config.TKeyLblJuz,
		config.TKeyLblDhikr,
		config.TKeyLblJournal,
		config.TKeyLblCharity,
		config.TKeyLblAmount,
		config.TKeyLblNote,
		config.TKeyLblSuhoor,
		config.TKeyLblIftar,
		config.TKeyFastFasted,
		config.TKeyFastPartial,
		config.TKeyFastNot,
		config.TKeyLblNextPrayer,
		config.TKeyLblRamadanDay,
		config.TKeyLblVerse,
		config.TKeyMsgAllPrayers,
		config.TKeyErrFetchTimes,
		config.TKeyErrFetchVerse,
		config.TKeyErrImport,
		config.TKeyMsgImportOK,
		config.TKeyConfirmReset,
		config.TKeyLblOnboardTitle,
		config.TKeyStatFardh,
		config.TKeyStatFasting,
		config.TKeyStatQuran,
		config.TKeyStatDhikr,
		config.TKeyStatJournal,
		config.TKeyStatCharity,
		config.TKeyErrNameReq,
		config.TKeyErrCityReq,
		config.TKeyErrAmountPos,
		config.TKeyErrPortReq,
		config.TKeyErrPortNum,
		config.TKeyErrPortRange,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			name := "active." + lang + ".json"
			path := filepath.Join("locales", name)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				path = filepath.Join("..", "..", "internal", "ui", "locales", name)
				content, err = os.ReadFile(path)
			}
			require.NoErrorf(t, err, "Must load %s", name)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, name)
			}

			// Orphan keys are a smell but not a failure.
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, name)
				}
			}
		})
	}
}
