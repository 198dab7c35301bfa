package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/locale"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

func TestNew_LoadsEmbeddedLanguages(t *testing.T) {
	tr := locale.New("")
	assert.ElementsMatch(t, config.SupportedLanguages, tr.Languages)
	assert.Equal(t, config.DefaultLanguage, tr.Language)
}

func TestSetLanguage_Matching(t *testing.T) {
	tests := []struct {
		requested string
		want      string
	}{
		{"en", "en"},
		{"hi", "hi"},
		{"hi-IN", "hi"},
		{"en-GB", "en"},
		{"fr", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			tr := locale.New(tt.requested)
			assert.Equal(t, tt.want, tr.Language)
		})
	}
}

func TestNames(t *testing.T) {
	en := locale.New("en")
	hi := locale.New("hi")

	assert.Equal(t, "Jupiter", en.BodyName(vedic.Jupiter))
	assert.Equal(t, "गुरु", hi.BodyName(vedic.Jupiter))
	assert.Equal(t, "Scorpio", en.SignName(vedic.Scorpio))
	assert.Equal(t, "मीन", hi.SignName(vedic.Pisces))
	assert.Equal(t, "Purva Phalguni", en.NakshatraName(10))
	assert.Equal(t, "रेवती", hi.NakshatraName(26))
}

func TestNames_FallBackToEnglishIdentifiers(t *testing.T) {
	en := locale.New("en")
	assert.Equal(t, "", en.NakshatraName(40))
	assert.Equal(t, "Body(12)", en.BodyName(vedic.Body(12)))
}

func TestMsg_MissingKey(t *testing.T) {
	tr := locale.New("en")
	assert.Equal(t, "no_such_key", tr.Msg("no_such_key"))
	assert.Equal(t, "Ascendant", tr.Msg(config.TKeyLblAscendant))

	var nilTr *locale.Translator
	assert.Equal(t, config.TKeyHdrBody, nilTr.Msg(config.TKeyHdrBody))
}

func TestSummary(t *testing.T) {
	en := locale.New("en")
	hi := locale.New("hi")

	tests := []struct {
		name string
		tr   *locale.Translator
		path []vedic.Body
		want string
	}{
		{"empty", en, nil, "Asha"},
		{"mahadasha", en, []vedic.Body{vedic.Venus}, "Asha: Venus Mahadasha"},
		{"antardasha", en, []vedic.Body{vedic.Venus, vedic.Sun}, "Asha: Venus–Sun Antardasha"},
		{"deep", en, []vedic.Body{vedic.Venus, vedic.Sun, vedic.Moon}, "Asha: Venus / Sun / Moon period"},
		{"hindi", hi, []vedic.Body{vedic.Saturn}, "Asha: शनि महादशा"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tr.Summary("Asha", tt.path))
		})
	}
}

// The engine falls back to the same English titles without a translator.
func TestSummary_MatchesFallbackFormat(t *testing.T) {
	en := locale.New("en")
	require.Equal(t, "Asha: Mars Mahadasha", en.Summary("Asha", []vedic.Body{vedic.Mars}))
}
