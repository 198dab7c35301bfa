// Package locale translates body, sign and nakshatra names and renders
// localized period summaries from the embedded message files.
package locale

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message keys for one language.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	matcher   language.Matcher

	// Languages lists the codes found in the embedded locale files.
	Languages []string
	// Language is the tag in use after matching the requested one.
	Language string
}

// New loads the embedded locales and selects lang. An unknown or empty
// language falls back to the closest available one.
func New(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	t := &Translator{bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		t.Languages = append(t.Languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	t.matcher = language.NewMatcher(bundle.LanguageTags())
	t.SetLanguage(lang)
	return t
}

// SetLanguage switches the active language.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	tag, _, _ := t.matcher.Match(language.Make(lang))
	base, _ := tag.Base()
	t.Language = base.String()
	t.localizer = i18n.NewLocalizer(t.bundle, t.Language)
}

// Msg translates a key. Missing keys come back unchanged.
func (t *Translator) Msg(key string) string {
	return t.render(key, nil)
}

func (t *Translator) render(key string, data map[string]string) string {
	if t == nil || t.localizer == nil {
		return key
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// BodyName returns the localized name of b.
func (t *Translator) BodyName(b vedic.Body) string {
	return t.fallback(config.TKeyBodyPrefix+strings.ToLower(b.String()), b.String())
}

// SignName returns the localized name of s.
func (t *Translator) SignName(s vedic.Sign) string {
	return t.fallback(config.TKeySignPrefix+strings.ToLower(s.String()), s.String())
}

// NakshatraName returns the localized name of the nakshatra at index 0..26.
func (t *Translator) NakshatraName(index int) string {
	return t.fallback(config.TKeyNakshatraPrefix+strconv.Itoa(index), vedic.NakshatraName(index))
}

func (t *Translator) fallback(key, def string) string {
	if msg := t.Msg(key); msg != key {
		return msg
	}
	return def
}

// Summary titles a period for name. path runs from the Mahadasha lord down.
// It has the signature expected by engine.Generator.FormatSummary.
func (t *Translator) Summary(name string, path []vedic.Body) string {
	switch len(path) {
	case 0:
		return name
	case 1:
		return t.render(config.TKeyEvtMahadasha, map[string]string{
			"Name": name,
			"Lord": t.BodyName(path[0]),
		})
	case 2:
		return t.render(config.TKeyEvtAntardasha, map[string]string{
			"Name":    name,
			"Lord":    t.BodyName(path[0]),
			"SubLord": t.BodyName(path[1]),
		})
	}
	names := make([]string, len(path))
	for i, b := range path {
		names[i] = t.BodyName(b)
	}
	return t.render(config.TKeyEvtDeepPeriod, map[string]string{
		"Name": name,
		"Path": strings.Join(names, config.PathSeparator),
	})
}
