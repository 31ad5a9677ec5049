package contact

import (
	"github.com/beautyflow/leadfunnel/pkg/email"
)

// adminEmailParams builds the staff notification. Staff reads Hungarian, so
// the template and treatment names are always Hungarian; only the language
// label reflects the visitor's locale.
func (s *Service) adminEmailParams(req SubmissionRequest, lang, timestamp string) email.SendEmailParams {
	body := s.translator.T(langHungarian, "email.admin.body",
		"timestamp", timestamp,
		"language", s.translator.T(lang, "language_label"),
		"lastName", req.LastName,
		"firstName", req.FirstName,
		"phone", req.Phone,
		"email", req.Email,
		"treatments", s.treatmentList(langHungarian, req.Treatments),
	)

	return email.SendEmailParams{
		From:     s.translator.T(langHungarian, "email.admin.from"),
		SendTo:   s.cfg.AdminEmail,
		Subject:  s.translator.T(langHungarian, "email.admin.subject"),
		BodyText: body,
		Tag:      "contact-admin",
	}
}

// userEmailParams builds the visitor's confirmation in their own language.
func (s *Service) userEmailParams(req SubmissionRequest, lang string) email.SendEmailParams {
	return email.SendEmailParams{
		From:     s.translator.T(lang, "email.user.from"),
		SendTo:   req.Email,
		Subject:  s.translator.T(lang, "email.user.subject"),
		BodyText: s.translator.T(lang, "email.user.body", "firstName", req.FirstName),
		Tag:      "contact-confirmation",
	}
}
