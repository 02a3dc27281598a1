package workers

import (
	"context"
	"log/slog"

	application "clawdrop/contexts/claims/intake-service/application"
	"clawdrop/contexts/claims/intake-service/application/commands"
)

// DistributionJob runs one distribution batch. The CLI invokes it for
// ad-hoc runs; an operator cron drives the weekly batch.
type DistributionJob struct {
	Commands commands.DistributeTokensUseCase
	DryRun   bool
	Logger   *slog.Logger
}

func (j DistributionJob) RunOnce(ctx context.Context) ([]commands.DistributionRow, error) {
	logger := application.ResolveLogger(j.Logger)
	rows, err := j.Commands.Execute(ctx, j.DryRun)
	if err != nil {
		logger.Error("distribution cycle failed",
			"event", "distribution_cycle_failed",
			"module", "claims/intake-service",
			"layer", "worker",
			"dry_run", j.DryRun,
			"error", err.Error(),
		)
		return nil, err
	}
	logger.Debug("distribution cycle succeeded",
		"event", "distribution_cycle_succeeded",
		"module", "claims/intake-service",
		"layer", "worker",
		"dry_run", j.DryRun,
		"rows", len(rows),
	)
	return rows, nil
}
