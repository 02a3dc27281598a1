package mail

import (
	"context"
	"log/slog"

	"clawdrop/contexts/claims/intake-service/domain/entities"
	"clawdrop/contexts/claims/intake-service/ports"
)

// Sender delivers one rendered message over a concrete transport.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Mailer composes lifecycle emails and hands them to a Sender. It is
// the single ports.Mailer implementation; transports vary underneath.
type Mailer struct {
	Sender        Sender
	VerifyBaseURL string
	Clock         ports.Clock
	Logger        *slog.Logger
}

func (m Mailer) SendVerification(ctx context.Context, submission entities.Submission) error {
	msg, err := composeVerification(submission, m.VerifyBaseURL)
	if err != nil {
		return err
	}
	return m.Sender.Send(ctx, msg)
}

func (m Mailer) SendDistribution(ctx context.Context, submission entities.Submission, transactionID string) error {
	msg, err := composeDistribution(submission, transactionID, m.Clock.Now())
	if err != nil {
		return err
	}
	return m.Sender.Send(ctx, msg)
}

var _ ports.Mailer = Mailer{}
