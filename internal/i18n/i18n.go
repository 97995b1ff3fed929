// Package i18n provides the bilingual (French/Arabic) message catalog for
// the public API. Translations live in embedded YAML files keyed by dotted
// message identifiers; lookups for a missing key return the key itself so a
// forgotten translation degrades visibly instead of failing.
package i18n

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Language describes a supported interface language.
type Language struct {
	Code      string `json:"code"`      // BCP 47 primary subtag ("fr", "ar")
	Name      string `json:"name"`      // native display name
	Direction string `json:"direction"` // "ltr" or "rtl"
}

// DefaultLanguage is the fallback for unknown or missing language codes.
const DefaultLanguage = "fr"

// Languages lists the supported languages in display order.
// French is the default.
var Languages = []Language{
	{Code: "fr", Name: "Français", Direction: "ltr"},
	{Code: "ar", Name: "العربية", Direction: "rtl"},
}

// Store holds the parsed message catalogs for all supported languages.
type Store struct {
	messages map[string]map[string]string
}

// NewStore parses the embedded locale files into a Store.
// It fails if a locale file is missing or not valid YAML, which makes a
// broken catalog a startup error rather than a silent runtime fallback.
func NewStore() (*Store, error) {
	s := &Store{messages: make(map[string]map[string]string, len(Languages))}
	for _, lang := range Languages {
		raw, err := localeFS.ReadFile("locales/" + lang.Code + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang.Code, err)
		}
		catalog := make(map[string]string)
		if err := yaml.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang.Code, err)
		}
		s.messages[lang.Code] = catalog
	}
	return s, nil
}

// T returns the translation of key for the given language code.
// Unknown language codes fall back to French; unknown keys return the key
// itself.
func (s *Store) T(langCode, key string) string {
	catalog, ok := s.messages[langCode]
	if !ok {
		catalog = s.messages[DefaultLanguage]
	}
	if msg, ok := catalog[key]; ok {
		return msg
	}
	return key
}

// Resolve returns the Language for code, falling back to the default
// language when the code is unsupported.
func Resolve(code string) Language {
	for _, lang := range Languages {
		if lang.Code == code {
			return lang
		}
	}
	return Languages[0]
}
