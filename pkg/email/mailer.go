package email

import (
	"context"
	"fmt"
	"regexp"
)

// EmailSender represents an interface for sending transactional emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending a single email.
type SendEmailParams struct {
	From     string `json:"from,omitempty"` // Optional sender override, e.g. "Kónya Fanni - Beautyflow <hello@beautyflow.pro>"
	SendTo   string `json:"send_to"`        // Email address of the recipient
	Subject  string `json:"subject"`        // Subject of the email
	BodyText string `json:"body_text"`      // Plain-text body of the email
	Tag      string `json:"tag,omitempty"`  // Optional, for provider-side analytics
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the parameters before any network call is made.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.BodyText == "" {
		return fmt.Errorf("%w: BodyText is required", ErrInvalidParams)
	}
	return nil
}
