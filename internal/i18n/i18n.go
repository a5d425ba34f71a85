package i18n

import "fmt"

// Language represents a supported UI language.
type Language string

const (
	LangEN Language = "en"
	LangDE Language = "de"
	LangJA Language = "ja"
)

var tables = map[Language]map[string]string{
	LangEN: en,
	LangDE: de,
	LangJA: ja,
}

// Languages lists supported languages in display order.
func Languages() []string {
	return []string{string(LangEN), string(LangDE), string(LangJA)}
}

// Supported reports whether lang has a label table.
func Supported(lang string) bool {
	_, ok := tables[Language(lang)]
	return ok
}

// Catalog resolves UI labels for one language. Each view holds its own
// catalog, so switching language never touches shared state.
type Catalog struct {
	lang Language
}

// New returns a catalog for lang.
// Unrecognized values fall back to English.
func New(lang string) Catalog {
	if !Supported(lang) {
		return Catalog{lang: LangEN}
	}
	return Catalog{lang: Language(lang)}
}

// Language returns the catalog's language.
func (c Catalog) Language() Language {
	if c.lang == "" {
		return LangEN
	}
	return c.lang
}

// T returns the translated string for the given key, falling back to
// English and then to the key itself.
func (c Catalog) T(key string) string {
	if v, ok := tables[c.Language()][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted translated string.
func (c Catalog) Tf(key string, args ...any) string {
	return fmt.Sprintf(c.T(key), args...)
}
