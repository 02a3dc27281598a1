package ports

import (
	"context"
	"time"

	"clawdrop/contexts/claims/intake-service/domain/entities"
	"clawdrop/internal/shared/events"
)

// ListFilter narrows ListSubmissions by lifecycle state.
type ListFilter string

const (
	FilterAll         ListFilter = "all"
	FilterVerified    ListFilter = "verified"
	FilterPending     ListFilter = "pending"
	FilterDistributed ListFilter = "distributed"
)

// Repository is the persistence port for the submission registry.
// The jsonfile adapter realizes every call as load-whole-document,
// mutate, save-whole-document; the postgres adapter maps the same calls
// onto row-level statements. RecordDistribution takes the entire batch
// so either adapter can commit a run in a single write.
type Repository interface {
	CreateSubmission(ctx context.Context, submission entities.Submission) error
	UpdateSubmission(ctx context.Context, submission entities.Submission) error
	GetSubmissionByToken(ctx context.Context, token string) (entities.Submission, error)
	FindUnverifiedByEmail(ctx context.Context, email string) (entities.Submission, bool, error)
	ListSubmissions(ctx context.Context, filter ListFilter) ([]entities.Submission, error)
	ListDistributable(ctx context.Context) ([]entities.Submission, error)
	RecordDistribution(ctx context.Context, batch entities.Distribution, updated []entities.Submission) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// TokenGenerator issues the two credential-shaped random strings the
// lifecycle needs: the emailed verification token and the simulated
// transaction identifier stamped on distributed submissions.
type TokenGenerator interface {
	NewToken(ctx context.Context) (string, error)
	NewTransactionID(ctx context.Context) (string, error)
}

// Mailer is the outbound notification port. Implementations must return
// an error on dispatch failure; the lifecycle decides whether that
// failure is isolated or surfaced.
type Mailer interface {
	SendVerification(ctx context.Context, submission entities.Submission) error
	SendDistribution(ctx context.Context, submission entities.Submission, transactionID string) error
}

// EventPublisher emits lifecycle events for observers. Publishing is
// best-effort; use cases never fail a command on a publish error.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event events.Envelope) error
}
