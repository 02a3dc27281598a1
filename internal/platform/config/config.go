package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Mail transport drivers.
const (
	MailDriverLog       = "log"
	MailDriverSMTP      = "smtp"
	MailDriverAgentmail = "agentmail"
)

// Config is centralized process configuration. Keep infra values here
// and pass typed config into builders, never read env deeper in.
type Config struct {
	ServiceName  string `env:"SERVICE_NAME" envDefault:"clawdrop"`
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	RegistryPath string `env:"REGISTRY_PATH" envDefault:"airdrop-registry.json"`

	// PostgresDSN switches persistence from the flat JSON registry to
	// the transactional store when set.
	PostgresDSN string `env:"POSTGRES_DSN"`

	MailDriver string `env:"MAIL_DRIVER" envDefault:"log"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	AgentmailAPIKey string `env:"AGENTMAIL_API_KEY"`
	AgentmailAPIURL string `env:"AGENTMAIL_API_URL" envDefault:"https://agentmail.io/api"`
	AgentmailFrom   string `env:"AGENTMAIL_FROM" envDefault:"noreply@clawtip.me"`

	VerifyBaseURL string `env:"VERIFY_BASE_URL" envDefault:"https://clawtip.me"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.MailDriver {
	case MailDriverLog:
	case MailDriverSMTP:
		if c.SMTPHost == "" || c.SMTPFrom == "" {
			return fmt.Errorf("mail driver %q requires SMTP_HOST and SMTP_FROM", c.MailDriver)
		}
	case MailDriverAgentmail:
		if c.AgentmailAPIKey == "" {
			return fmt.Errorf("mail driver %q requires AGENTMAIL_API_KEY", c.MailDriver)
		}
	default:
		return fmt.Errorf("unknown mail driver %q (want log, smtp or agentmail)", c.MailDriver)
	}
	return nil
}
