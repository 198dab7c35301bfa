package locale_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// TestLocaleIntegrity ensures every translation key used by the code exists
// in every locale file.
func TestLocaleIntegrity(t *testing.T) {
	keys := []string{
		config.TKeyEvtMahadasha,
		config.TKeyEvtAntardasha,
		config.TKeyEvtDeepPeriod,
		config.TKeyCalName,
		config.TKeyHdrBody,
		config.TKeyHdrSign,
		config.TKeyHdrDegree,
		config.TKeyHdrNakshatra,
		config.TKeyHdrHouse,
		config.TKeyHdrDignity,
		config.TKeyHdrLord,
		config.TKeyHdrStart,
		config.TKeyHdrEnd,
		config.TKeyLblAscendant,
		config.TKeyLblAyanamsa,
		config.TKeyLblHouseSystem,
		config.TKeyLblRetrograde,
		config.TKeyLblCombust,
		config.TKeyLblCurrent,
	}
	for _, b := range vedic.AllBodies() {
		keys = append(keys, config.TKeyBodyPrefix+strings.ToLower(b.String()))
	}
	for s := vedic.Aries; s <= vedic.Pisces; s++ {
		keys = append(keys, config.TKeySignPrefix+strings.ToLower(s.String()))
	}
	for i := 0; i < vedic.NakshatraCount; i++ {
		keys = append(keys, config.TKeyNakshatraPrefix+strconv.Itoa(i))
	}

	defined := make(map[string]bool, len(keys))
	for _, k := range keys {
		defined[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
			require.NoError(t, err)

			var messages map[string]string
			require.NoError(t, json.Unmarshal(content, &messages), "JSON must be valid")

			for _, k := range keys {
				assert.NotEmptyf(t, messages[k], "key %q missing in active.%s.json", k, lang)
			}
			for k := range messages {
				if !defined[k] {
					t.Logf("Warning: key %q in active.%s.json is not used", k, lang)
				}
			}
		})
	}
}
