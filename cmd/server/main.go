package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/beautyflow/leadfunnel/modules/contact"
	"github.com/beautyflow/leadfunnel/pkg/config"
	"github.com/beautyflow/leadfunnel/pkg/email"
	"github.com/beautyflow/leadfunnel/pkg/events"
	"github.com/beautyflow/leadfunnel/pkg/httpserver"
	"github.com/beautyflow/leadfunnel/pkg/logger"
	"github.com/beautyflow/leadfunnel/pkg/requestid"
	"github.com/beautyflow/leadfunnel/pkg/sheets"
)

type appConfig struct {
	AppEnv      string `env:"APP_ENV" envDefault:"production"`
	DevEmailDir string `env:"DEV_EMAIL_DIR" envDefault:"./tmp/emails"`
}

func main() {
	var (
		appCfg     appConfig
		serverCfg  httpserver.Config
		emailCfg   email.Config
		sheetsCfg  sheets.Config
		contactCfg contact.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&serverCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&sheetsCfg)
	config.MustLoad(&contactCfg)

	logOpts := []logger.Option{
		logger.WithProduction("leadfunnel"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if appCfg.AppEnv == "development" {
		logOpts[0] = logger.WithDevelopment("leadfunnel")
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	mailer := newMailer(appCfg, emailCfg, log)

	var rows contact.RowAppender
	if sheetsCfg.Configured() {
		rows = sheets.NewClient(sheetsCfg)
	} else {
		log.Warn("Google Sheets credentials not configured, submissions will not be recorded")
	}

	svc, err := contact.NewService(contactCfg, mailer, rows, events.NewLogSink(log), log)
	if err != nil {
		log.Error("failed to build contact service", logger.Error(err))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Get("/health", httpserver.HealthCheckHandler(context.Background(), log))
	r.Mount("/api", svc.Router())

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

// newMailer picks the outbound email implementation. Production requires
// Postmark tokens; development falls back to writing emails to disk. With no
// provider at all the service stays up and answers submissions with the
// call-us message.
func newMailer(appCfg appConfig, cfg email.Config, log *slog.Logger) email.EmailSender {
	if cfg.PostmarkServerToken != "" && cfg.PostmarkAccountToken != "" {
		mailer, err := email.NewPostmarkClient(cfg)
		if err != nil {
			log.Error("invalid email configuration", logger.Error(err))
			return nil
		}
		return mailer
	}

	if appCfg.AppEnv == "development" {
		log.Info("using development email sender", slog.String("dir", appCfg.DevEmailDir))
		return email.NewDevSender(appCfg.DevEmailDir)
	}

	log.Error("email provider not configured, submissions will be rejected")
	return nil
}
