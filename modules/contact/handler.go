package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/beautyflow/leadfunnel/pkg/binder"
)

// Router mounts the contact endpoints on a fresh chi router.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/contact", s.handleSubmit)
	return r
}

// handleSubmit parses one form submission and hands it to Process. A body
// that fails to parse is rejected before validation with a localized
// bad-request message; the body's language hint is not available at that
// point, so the Accept-Language header decides the locale.
func (s *Service) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmissionRequest
	if err := binder.JSON()(r, &req); err != nil {
		lang := s.langs.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   s.translator.T(lang, "errors.invalid_request"),
		})
		return
	}

	// The explicit lang field wins; the Accept-Language header is the
	// fallback for forms that never set it.
	if req.Lang == "" {
		req.Lang = s.langs.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
	}

	status, resp := s.Process(r.Context(), req)
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
