package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The confirmation email and every form error exist in both locales; the
// admin notification is Hungarian-only by design. A key added to one side
// without the other would silently fall back, so symmetry is asserted here.
func TestTranslationCatalogCoverage(t *testing.T) {
	t.Parallel()

	translator, err := newTranslator()
	require.NoError(t, err)

	bilingual := []string{
		"language_label",
		"errors.invalid_request",
		"errors.treatments",
		"errors.first_name",
		"errors.last_name",
		"errors.phone",
		"errors.email",
		"errors.consent",
		"errors.email_service_unavailable",
		"errors.email_send_failed",
		"treatments.lezer",
		"treatments.hydra",
		"treatments.smink",
		"treatments.carbon",
		"treatments.tetovalas",
		"treatments.pigment",
		"email.user.from",
		"email.user.subject",
		"email.user.body",
	}
	for _, key := range bilingual {
		assert.Truef(t, translator.HasTranslation(langHungarian, key), "missing hu key %s", key)
		assert.Truef(t, translator.HasTranslation(langEnglish, key), "missing en key %s", key)
	}

	hungarianOnly := []string{
		"email.admin.from",
		"email.admin.subject",
		"email.admin.body",
	}
	for _, key := range hungarianOnly {
		assert.Truef(t, translator.HasTranslation(langHungarian, key), "missing hu key %s", key)
	}
}
