package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "clawdrop/contexts/claims/intake-service/application"
	domainerrors "clawdrop/contexts/claims/intake-service/domain/errors"
	"clawdrop/contexts/claims/intake-service/ports"
)

// VerifiedMessage is returned to the claimant on successful verification.
const VerifiedMessage = "Email verified! You will receive your CLAW in the next distribution batch."

type VerifyEmailUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

// Execute redeems a verification token. The transition is one-way and
// one-time: on success the token and its expiry are cleared so the same
// credential can never verify twice.
func (uc VerifyEmailUseCase) Execute(ctx context.Context, token string) (string, error) {
	logger := application.ResolveLogger(uc.Logger)

	token = strings.TrimSpace(token)
	if token == "" {
		return "", domainerrors.ErrInvalidToken
	}

	submission, err := uc.Repository.GetSubmissionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSubmissionNotFound) {
			return "", domainerrors.ErrInvalidToken
		}
		return "", err
	}

	now := uc.Clock.Now().UTC()
	if submission.TokenExpired(now) {
		logger.Warn("verification token expired",
			"event", "verification_token_expired",
			"module", "claims/intake-service",
			"layer", "application",
			"submission_id", submission.ID,
		)
		return "", domainerrors.ErrTokenExpired
	}
	if submission.Verified() {
		return "", domainerrors.ErrAlreadyVerified
	}

	submission.VerifiedAt = &now
	submission.VerificationToken = ""
	submission.VerificationTokenExpiry = nil
	if err := uc.Repository.UpdateSubmission(ctx, submission); err != nil {
		return "", err
	}

	logger.Info("submission verified",
		"event", "submission_verified",
		"module", "claims/intake-service",
		"layer", "application",
		"submission_id", submission.ID,
		"entity_type", string(submission.EntityType),
	)
	publishEvent(ctx, uc.Events, uc.Logger, TopicSubmissionVerified, "submission", submission.ID, now,
		submissionVerifiedPayload{
			SubmissionID: submission.ID,
			TokenAmount:  submission.TokenAmount,
		})

	return VerifiedMessage, nil
}
