package contact

import (
	"github.com/beautyflow/leadfunnel/pkg/validator"
)

// SubmissionRequest is one consultation request as posted by the form.
// It lives for the duration of the HTTP call and is never persisted.
type SubmissionRequest struct {
	Treatments []string `json:"treatments"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Consent    bool     `json:"consent"`
	Website    string   `json:"website"`        // honeypot, must be empty
	Lang       string   `json:"lang,omitempty"` // "hu" (default) or "en"
}

// IsBot reports whether the honeypot field was filled in.
func (r SubmissionRequest) IsBot() bool {
	return r.Website != ""
}

// Validate checks the submission fields in their fixed user-facing order.
// The first failing field wins; its TranslationKey resolves to the message
// shown to the user.
func (r SubmissionRequest) Validate() error {
	return validator.ApplyOrdered(
		validator.NonEmptySlice("treatments", r.Treatments, "errors.treatments"),
		validator.MinRuneLength("firstName", r.FirstName, 2, "errors.first_name"),
		validator.MinRuneLength("lastName", r.LastName, 2, "errors.last_name"),
		validator.HungarianPhone("phone", r.Phone, "errors.phone"),
		validator.EmailShape("email", r.Email, "errors.email"),
		validator.True("consent", r.Consent, "errors.consent"),
	)
}

// Response is the JSON body returned for every submission.
type Response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
