package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Matcher resolves a requested language against a fixed set of supported
// codes. The first supported code is the default.
type Matcher struct {
	codes   []string
	matcher language.Matcher
}

// NewMatcher builds a Matcher for the given language codes. Invalid codes
// are rejected so misconfiguration surfaces at startup.
func NewMatcher(codes ...string) (*Matcher, error) {
	if len(codes) == 0 {
		return nil, ErrNoLanguages
	}

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, ErrInvalidLanguageCode
		}
		tags = append(tags, tag)
	}

	return &Matcher{
		codes:   codes,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Match returns the supported code best matching the candidates, in order
// of preference. Empty candidates are skipped; with no usable candidate the
// default code is returned.
func (m *Matcher) Match(candidates ...string) string {
	tags := make([]language.Tag, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if tag, err := language.Parse(candidate); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return m.codes[0]
	}

	_, index, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return m.codes[0]
	}
	return m.codes[index]
}

// MatchAcceptLanguage resolves an Accept-Language header value, honoring
// quality weights. An empty or unparsable header yields the default code.
func (m *Matcher) MatchAcceptLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return m.codes[0]
	}

	_, index, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return m.codes[0]
	}
	return m.codes[index]
}
