package contact

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/beautyflow/leadfunnel/pkg/async"
	"github.com/beautyflow/leadfunnel/pkg/email"
	"github.com/beautyflow/leadfunnel/pkg/events"
	"github.com/beautyflow/leadfunnel/pkg/i18n"
	"github.com/beautyflow/leadfunnel/pkg/logger"
	"github.com/beautyflow/leadfunnel/pkg/sheets"
	"github.com/beautyflow/leadfunnel/pkg/validator"
)

// timestampLayout renders submission times the way the salon reads them,
// matching the hu-HU numeric date/time format.
const timestampLayout = "2006. 01. 02. 15:04"

// RowAppender records one submission row in the spreadsheet.
type RowAppender interface {
	Append(ctx context.Context, row []string) error
}

// Service orchestrates one consultation submission: validation, the
// concurrent fan-out to both emails and the sheet append, and the
// aggregation of their outcomes into a single response.
type Service struct {
	cfg        Config
	mailer     email.EmailSender // nil when the provider key is absent
	rows       RowAppender       // nil when sheets are not configured
	sink       events.Sink
	log        *slog.Logger
	translator *i18n.Translator
	langs      *i18n.Matcher
	now        func() time.Time
	loc        *time.Location
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the orchestrator. A nil mailer is allowed and yields the
// "service unavailable, call us" failure per request rather than a startup
// crash; a nil rows appender degrades to the skipped outcome.
func NewService(cfg Config, mailer email.EmailSender, rows RowAppender, sink events.Sink, log *slog.Logger, opts ...ServiceOption) (*Service, error) {
	translator, err := newTranslator()
	if err != nil {
		return nil, err
	}
	langs, err := newLangMatcher()
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation("Europe/Budapest")
	if err != nil {
		return nil, err
	}

	if sink == nil {
		sink = events.NopSink{}
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Service{
		cfg:        cfg,
		mailer:     mailer,
		rows:       rows,
		sink:       sink,
		log:        log,
		translator: translator,
		langs:      langs,
		now:        time.Now,
		loc:        loc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// dispatchInput carries one submission through the concurrent branches.
type dispatchInput struct {
	req       SubmissionRequest
	lang      string
	timestamp string
}

// Process runs one submission end to end and returns the HTTP status and
// response body.
func (s *Service) Process(ctx context.Context, req SubmissionRequest) (int, Response) {
	lang := s.langs.Match(req.Lang)

	// A filled honeypot means a bot. Claim success without doing anything
	// so automated submitters learn nothing from the response.
	if req.IsBot() {
		s.sink.Emit(ctx, "contact.bot_detected")
		return http.StatusOK, Response{Success: true}
	}

	if err := req.Validate(); err != nil {
		ve := validator.ExtractValidationErrors(err)
		field := ve.First()
		s.sink.Emit(ctx, "contact.rejected", slog.String("field", field.Field))
		return http.StatusBadRequest, Response{
			Success: false,
			Error:   s.translator.T(lang, field.TranslationKey),
		}
	}

	if s.mailer == nil {
		s.log.ErrorContext(ctx, "email provider not configured, rejecting submission")
		return http.StatusInternalServerError, Response{
			Success: false,
			Error:   s.translator.T(lang, "errors.email_service_unavailable"),
		}
	}

	in := dispatchInput{
		req:       req,
		lang:      lang,
		timestamp: s.now().In(s.loc).Format(timestampLayout),
	}

	// All three branches run concurrently and all are allowed to settle;
	// a failing email must not cancel the sheet append or the other email.
	adminFut := async.Async(ctx, in, s.dispatchAdminEmail)
	userFut := async.Async(ctx, in, s.dispatchUserEmail)
	sheetFut := async.Async(ctx, in, s.dispatchSheetAppend)
	settled := async.WaitAllSettled(adminFut, userFut, sheetFut)

	adminOut := outcomeOf(settled[0].Err)
	userOut := outcomeOf(settled[1].Err)
	sheetOut := outcomeOf(settled[2].Err)

	// The spreadsheet record is a convenience; its outcome never changes
	// the HTTP result.
	switch sheetOut.Status {
	case OutcomeSkipped:
		s.log.WarnContext(ctx, "Google Sheets credentials not configured, append skipped")
	case OutcomeFailed:
		s.log.ErrorContext(ctx, "Google Sheets append failed", logger.Error(sheetOut.Err))
	}

	if adminOut.Status == OutcomeFailed && userOut.Status == OutcomeFailed {
		s.log.ErrorContext(ctx, "both emails failed", logger.Errors(adminOut.Err, userOut.Err))
		return http.StatusInternalServerError, Response{
			Success: false,
			Error:   s.translator.T(lang, "errors.email_send_failed", "detail", adminOut.Err.Error()),
		}
	}
	if adminOut.Status == OutcomeFailed || userOut.Status == OutcomeFailed {
		s.log.WarnContext(ctx, "partial email failure, submission accepted",
			logger.Errors(adminOut.Err, userOut.Err))
	}

	s.sink.Emit(ctx, "contact.submitted",
		slog.String("lang", lang),
		slog.Int("treatments", len(req.Treatments)),
		slog.String("sheet_outcome", sheetOut.Status.String()),
	)
	return http.StatusOK, Response{Success: true}
}

func (s *Service) dispatchAdminEmail(ctx context.Context, in dispatchInput) (struct{}, error) {
	return struct{}{}, s.mailer.SendEmail(ctx, s.adminEmailParams(in.req, in.lang, in.timestamp))
}

func (s *Service) dispatchUserEmail(ctx context.Context, in dispatchInput) (struct{}, error) {
	return struct{}{}, s.mailer.SendEmail(ctx, s.userEmailParams(in.req, in.lang))
}

func (s *Service) dispatchSheetAppend(ctx context.Context, in dispatchInput) (struct{}, error) {
	if s.rows == nil {
		return struct{}{}, sheets.ErrNotConfigured
	}

	row := []string{
		in.timestamp,
		s.treatmentList(langHungarian, in.req.Treatments),
		in.req.LastName,
		in.req.FirstName,
		in.req.Phone,
		in.req.Email,
	}
	return struct{}{}, s.rows.Append(ctx, row)
}
