package i18n

import (
	"regexp"
	"strings"
)

// Translator resolves translation keys against per-language nested maps.
// Keys use dot notation ("email.user.subject"); templates substitute named
// parameters in the form "%{name}".
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one has no catalog.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing translation returns the key
// itself (true, the default) or an empty string.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// NewTranslator creates a Translator over the given catalog.
func NewTranslator(translations map[string]map[string]any, options ...Option) (*Translator, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	for lang, catalog := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if catalog == nil {
			return nil, ErrNilCatalog
		}
	}

	t := &Translator{
		translations:  translations,
		defaultLang:   "en",
		fallbackToKey: true,
	}
	for _, option := range options {
		option(t)
	}
	return t, nil
}

// SupportedLanguages returns the language codes with a catalog.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	return langs
}

// HasTranslation reports whether lang has a value for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	catalog, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(catalog, key)
	return ok
}

// T translates key for lang, substituting named parameters supplied as
// key-value pairs.
//
//	// With translation "greeting": "Kedves %{name}!"
//	msg := translator.T("hu", "greeting", "name", "Anna")
//	// Returns: "Kedves Anna!"
//
// An unsupported language falls back to the default language; a missing key
// falls back to the key itself unless disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	catalog, ok := t.translations[lang]
	if !ok {
		catalog, ok = t.translations[t.defaultLang]
		if !ok {
			return t.miss(key, args)
		}
	}

	val, ok := lookup(catalog, key)
	if !ok {
		// The default catalog may still carry the key.
		if fallback, ok := t.translations[t.defaultLang]; ok {
			val, ok = lookup(fallback, key)
			if !ok {
				return t.miss(key, args)
			}
			if s, ok := val.(string); ok {
				return substitute(s, args)
			}
			return t.miss(key, args)
		}
		return t.miss(key, args)
	}

	s, ok := val.(string)
	if !ok {
		return t.miss(key, args)
	}
	return substitute(s, args)
}

func (t *Translator) miss(key string, args []string) string {
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

// lookup traverses a nested map using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			return nil, false
		}
		current = currentMap
	}

	return nil, false
}

// paramRegex matches named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{key} placeholders using args as key-value pairs.
// Placeholders without a matching argument are left untouched.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
