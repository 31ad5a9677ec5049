package i18n

import "errors"

var (
	ErrNoTranslations      = errors.New("i18n: no translations provided")
	ErrEmptyLanguageCode   = errors.New("i18n: empty language code")
	ErrNilCatalog          = errors.New("i18n: nil translations map for language")
	ErrFailedToParseYAML   = errors.New("i18n: failed to parse YAML translations")
	ErrNoLanguages         = errors.New("i18n: no languages provided to matcher")
	ErrInvalidLanguageCode = errors.New("i18n: invalid language code")
)
