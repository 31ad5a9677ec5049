package contact

import (
	_ "embed"
	"strings"

	"github.com/beautyflow/leadfunnel/pkg/i18n"
)

const (
	langHungarian = "hu"
	langEnglish   = "en"
)

//go:embed translations.yaml
var translationCatalog []byte

func newTranslator() (*i18n.Translator, error) {
	return i18n.NewTranslatorFromYAML(translationCatalog, i18n.WithDefaultLanguage(langHungarian))
}

func newLangMatcher() (*i18n.Matcher, error) {
	// Hungarian first: it is the default for empty or unknown tags.
	return i18n.NewMatcher(langHungarian, langEnglish)
}

// treatmentList resolves treatment identifiers to display names in the
// given language and joins them with commas. Unknown identifiers pass
// through verbatim so a stale form never loses data.
func (s *Service) treatmentList(lang string, ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		key := "treatments." + id
		if s.translator.HasTranslation(lang, key) {
			names = append(names, s.translator.T(lang, key))
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
