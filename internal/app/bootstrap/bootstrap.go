package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	intakeservice "clawdrop/contexts/claims/intake-service"
	"clawdrop/contexts/claims/intake-service/adapters/jsonfile"
	"clawdrop/contexts/claims/intake-service/adapters/mail"
	postgresadapter "clawdrop/contexts/claims/intake-service/adapters/postgres"
	randadapter "clawdrop/contexts/claims/intake-service/adapters/rand"
	"clawdrop/contexts/claims/intake-service/application/commands"
	"clawdrop/contexts/claims/intake-service/ports"
	"clawdrop/internal/platform/config"
	"clawdrop/internal/platform/db"
	"clawdrop/internal/platform/httpserver"
	"clawdrop/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type App struct {
	Config   config.Config
	Intake   intakeservice.Module
	Bus      *messaging.Bus
	Logger   *slog.Logger
	postgres *db.Postgres
}

func Build() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName)
	bus := messaging.NewBus(logger)
	startAuditSubscriber(bus, logger)

	var (
		repo ports.Repository
		pg   *db.Postgres
	)
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		pgRepo := postgresadapter.NewRepository(pg.DB, logger)
		if err := pgRepo.Migrate(context.Background()); err != nil {
			_ = pg.Close()
			return nil, err
		}
		repo = pgRepo
	} else {
		repo = jsonfile.NewStore(cfg.RegistryPath, logger)
	}

	clock := randadapter.SystemClock{}
	module := intakeservice.NewModule(intakeservice.Dependencies{
		Repository: repo,
		Clock:      clock,
		IDGen:      randadapter.Generator{},
		Tokens:     randadapter.Generator{},
		Mailer: mail.Mailer{
			Sender:        buildSender(cfg, logger),
			VerifyBaseURL: cfg.VerifyBaseURL,
			Clock:         clock,
			Logger:        logger,
		},
		Events: bus,
		Logger: logger,
	})

	return &App{
		Config:   cfg,
		Intake:   module,
		Bus:      bus,
		Logger:   logger,
		postgres: pg,
	}, nil
}

func (a *App) Server() *httpserver.Server {
	return httpserver.New(a.Intake, a.Logger, normalizeAddr(a.Config.HTTPPort))
}

func (a *App) ServerOn(port string) *httpserver.Server {
	return httpserver.New(a.Intake, a.Logger, normalizeAddr(port))
}

func (a *App) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func buildSender(cfg config.Config, logger *slog.Logger) mail.Sender {
	switch cfg.MailDriver {
	case config.MailDriverSMTP:
		return mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	case config.MailDriverAgentmail:
		return mail.NewAgentmailSender(cfg.AgentmailAPIURL, cfg.AgentmailAPIKey, cfg.AgentmailFrom)
	default:
		return mail.LogSender{Logger: logger}
	}
}

func startAuditSubscriber(bus *messaging.Bus, logger *slog.Logger) {
	topics := []string{
		commands.TopicSubmissionCreated,
		commands.TopicSubmissionVerified,
		commands.TopicDistributionComplete,
	}
	for _, topic := range topics {
		topic := topic
		ch := bus.Subscribe(topic, 64)
		go func() {
			for event := range ch {
				logger.Info("lifecycle event",
					"event", "audit_event_observed",
					"module", "internal/app/bootstrap",
					"layer", "platform",
					"topic", topic,
					"event_id", event.EventID,
					"event_type", event.EventType,
					"entity_id", event.EntityID,
				)
			}
		}()
	}
}

// Run is a convenience for the server process.
func (a *App) Run(_ context.Context) error {
	a.Logger.Info("app started",
		"event", "bootstrap_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.Server().Start()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
