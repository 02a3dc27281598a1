package commands

import (
	"context"
	"log/slog"
	"time"

	application "clawdrop/contexts/claims/intake-service/application"
	"clawdrop/contexts/claims/intake-service/ports"
	"clawdrop/internal/shared/events"
)

const (
	TopicSubmissionCreated    = "airdrop.submission.created"
	TopicSubmissionVerified   = "airdrop.submission.verified"
	TopicDistributionComplete = "airdrop.distribution.completed"
)

type submissionCreatedPayload struct {
	SubmissionID string `json:"submission_id"`
	EntityType   string `json:"entity_type"`
	TokenAmount  int    `json:"token_amount"`
	Newsletter   bool   `json:"newsletter"`
}

type submissionVerifiedPayload struct {
	SubmissionID string `json:"submission_id"`
	TokenAmount  int    `json:"token_amount"`
}

type distributionCompletedPayload struct {
	BatchID     string `json:"batch_id"`
	Submissions int    `json:"submissions"`
	TokenTotal  int    `json:"token_total"`
}

// publishEvent emits a lifecycle event when a publisher is wired.
// Publish failures are logged and swallowed; command outcomes never
// depend on observer delivery.
func publishEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	topic string,
	entityType string,
	entityID string,
	occurredAt time.Time,
	payload any,
) {
	if publisher == nil {
		return
	}
	envelope := events.New(topic, entityType, entityID, occurredAt, payload)
	if err := publisher.Publish(ctx, topic, envelope); err != nil {
		application.ResolveLogger(logger).Warn("lifecycle event publish failed",
			"event", "lifecycle_event_publish_failed",
			"module", "claims/intake-service",
			"layer", "application",
			"topic", topic,
			"entity_id", entityID,
			"error", err.Error(),
		)
	}
}
