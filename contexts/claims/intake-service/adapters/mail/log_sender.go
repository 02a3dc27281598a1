package mail

import (
	"context"
	"log/slog"
)

// LogSender is the development transport: it logs instead of sending,
// so local runs surface token links without an SMTP or API dependency.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(_ context.Context, msg Message) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("email logged (dev transport)",
		"event", "email_logged",
		"module", "claims/intake-service",
		"layer", "adapter",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}
