package commands

import (
	"context"
	"log/slog"

	application "clawdrop/contexts/claims/intake-service/application"
	"clawdrop/contexts/claims/intake-service/domain/entities"
	"clawdrop/contexts/claims/intake-service/ports"
)

const (
	DistributionStatusDryRun = "DRY-RUN"
	DistributionStatusSent   = "SENT"
)

// DistributionRow is the per-submission outcome of one run.
type DistributionRow struct {
	SubmissionID  string
	Email         string
	Wallet        string
	Amount        int
	TransactionID string
	Status        string
	EmailSent     bool
}

type DistributeTokensUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Tokens     ports.TokenGenerator
	Mailer     ports.Mailer
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

// Execute processes every verified, not-yet-distributed submission in
// registry order. A dry run reports intended transfers and touches
// nothing. A live run stamps DistributedAt and the transaction id on
// each submission, isolates per-item mail failures, and persists the
// whole batch exactly once at the end.
func (uc DistributeTokensUseCase) Execute(ctx context.Context, dryRun bool) ([]DistributionRow, error) {
	logger := application.ResolveLogger(uc.Logger)

	eligible, err := uc.Repository.ListDistributable(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("distribution run starting",
		"event", "distribution_run_starting",
		"module", "claims/intake-service",
		"layer", "application",
		"eligible", len(eligible),
		"dry_run", dryRun,
	)

	rows := make([]DistributionRow, 0, len(eligible))
	if dryRun {
		for _, submission := range eligible {
			rows = append(rows, DistributionRow{
				SubmissionID: submission.ID,
				Email:        submission.Email,
				Wallet:       submission.Wallet,
				Amount:       submission.TokenAmount,
				Status:       DistributionStatusDryRun,
			})
		}
		return rows, nil
	}
	if len(eligible) == 0 {
		return rows, nil
	}

	now := uc.Clock.Now().UTC()
	updated := make([]entities.Submission, 0, len(eligible))
	tokenTotal := 0
	for _, submission := range eligible {
		txID, err := uc.Tokens.NewTransactionID(ctx)
		if err != nil {
			return nil, err
		}

		distributedAt := now
		submission.DistributedAt = &distributedAt
		submission.TransactionID = txID
		updated = append(updated, submission)
		tokenTotal += submission.TokenAmount

		emailSent := true
		if err := uc.Mailer.SendDistribution(ctx, submission, txID); err != nil {
			emailSent = false
			logger.Error("distribution email dispatch failed",
				"event", "distribution_email_failed",
				"module", "claims/intake-service",
				"layer", "application",
				"submission_id", submission.ID,
				"error", err.Error(),
			)
		}
		rows = append(rows, DistributionRow{
			SubmissionID:  submission.ID,
			Email:         submission.Email,
			Wallet:        submission.Wallet,
			Amount:        submission.TokenAmount,
			TransactionID: txID,
			Status:        DistributionStatusSent,
			EmailSent:     emailSent,
		})
	}

	batchID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return nil, err
	}
	batch := entities.Distribution{
		ID:          batchID,
		ExecutedAt:  now,
		Submissions: len(updated),
		TokenTotal:  tokenTotal,
	}
	if err := uc.Repository.RecordDistribution(ctx, batch, updated); err != nil {
		return nil, err
	}

	logger.Info("distribution run completed",
		"event", "distribution_run_completed",
		"module", "claims/intake-service",
		"layer", "application",
		"batch_id", batch.ID,
		"submissions", batch.Submissions,
		"token_total", batch.TokenTotal,
	)
	publishEvent(ctx, uc.Events, uc.Logger, TopicDistributionComplete, "distribution", batch.ID, now,
		distributionCompletedPayload{
			BatchID:     batch.ID,
			Submissions: batch.Submissions,
			TokenTotal:  batch.TokenTotal,
		})

	return rows, nil
}
