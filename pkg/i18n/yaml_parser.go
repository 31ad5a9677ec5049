package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML translation catalog of the form:
//
//	hu:
//	  email:
//	    user:
//	      subject: "Érdeklődésed megkaptuk"
//	en:
//	  email:
//	    user:
//	      subject: "We received your inquiry"
//
// The top level maps language codes to nested translation maps.
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		catalog, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrFailedToParseYAML, lang, val)
		}
		result[lang] = catalog
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// NewTranslatorFromYAML parses a YAML catalog and builds a Translator from it.
func NewTranslatorFromYAML(content []byte, options ...Option) (*Translator, error) {
	translations, err := ParseYAML(content)
	if err != nil {
		return nil, err
	}
	return NewTranslator(translations, options...)
}
