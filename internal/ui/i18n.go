package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator renders translation keys in the language of an engine.Language
// selector. Every method falls back to the key (or an English constant) when
// a message is missing, so output never fails because of a locale file.
type Translator struct {
	Lang               engine.Language
	SupportedLanguages []string

	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewTranslator loads the embedded locale files and selects the localizer
// matching lang's script.
func NewTranslator(lang engine.Language) *Translator {
	t := &Translator{Lang: lang.Normalize()}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocalesDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return t
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleExt) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleExt)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, config.LocalesDir+"/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		t.SupportedLanguages = append(t.SupportedLanguages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	t.bundle = bundle
	t.localizer = i18n.NewLocalizer(bundle, t.Lang.Tag().String())
	return t
}

// Localize renders key with data. ok is false when the key has no message.
func (t *Translator) Localize(key string, data map[string]any) (msg string, ok bool) {
	if t == nil || t.localizer == nil {
		return key, false
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil || msg == "" {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key, false
	}
	return msg, true
}

// Msg is Localize without template data.
func (t *Translator) Msg(key string) string {
	msg, _ := t.Localize(key, nil)
	return msg
}

// SummaryFormatter builds the event summaries of engine.Generator.
func (t *Translator) SummaryFormatter() func(name string, age int, yearKnown bool) string {
	return func(name string, age int, yearKnown bool) string {
		var (
			msg string
			ok  bool
		)
		switch {
		case !yearKnown:
			msg, ok = t.Localize(config.TKeyEvtSummary, map[string]any{"Name": name})
		case age == 0:
			msg, ok = t.Localize(config.TKeyEvtSummaryBrth, map[string]any{"Name": name})
		default:
			msg, ok = t.Localize(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
		}
		if ok {
			return msg
		}

		switch {
		case !yearKnown:
			return fmt.Sprintf(config.FallbackSummary, name)
		case age == 0:
			return fmt.Sprintf(config.FallbackSummaryBirth, name)
		default:
			return fmt.Sprintf(config.FallbackSummaryAge, name, age)
		}
	}
}

// DescriptionFormatter builds the event descriptions of engine.Generator.
// An unknown animal is shown as config.AgeUnknown.
func (t *Translator) DescriptionFormatter() func(zodiac, animal string) string {
	return func(zodiac, animal string) string {
		if animal == "" {
			animal = config.AgeUnknown
		}
		msg, ok := t.Localize(config.TKeyEvtDescription, map[string]any{"Zodiac": zodiac, "Animal": animal})
		if !ok {
			return fmt.Sprintf(config.FallbackDescription, zodiac, animal)
		}
		return msg
	}
}
