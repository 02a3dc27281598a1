package commands

import (
	"context"
	"log/slog"
	"strings"

	application "clawdrop/contexts/claims/intake-service/application"
	"clawdrop/contexts/claims/intake-service/domain/entities"
	domainerrors "clawdrop/contexts/claims/intake-service/domain/errors"
	"clawdrop/contexts/claims/intake-service/ports"
)

// Violation messages, in check order. The joined string is part of the
// public contract for rejected submissions.
const (
	violationEmail          = "Invalid email address"
	violationWallet         = "Invalid Solana wallet address"
	violationEntityType     = `Invalid entity type. Must be "human" or "agent"`
	violationMoltbookHandle = "Moltbook handle required for agents"
	violationGithubMissing  = "GitHub repository required for agents"
	violationGithubURL      = "Invalid GitHub repository URL"
	violationDuplicateEmail = "Email already submitted. Check your inbox for verification link."
)

type ProcessSubmissionCommand struct {
	Email          string
	Wallet         string
	EntityType     string
	MoltbookHandle string
	GithubRepo     string
	RedditHandle   string
	Description    string
	Newsletter     bool
}

// ProcessResult separates "submission durably recorded" from "verification
// email dispatched". A mail failure after persistence leaves Submission
// populated and EmailDispatched false.
type ProcessResult struct {
	Submission      entities.Submission
	EmailDispatched bool
}

type ProcessSubmissionUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Tokens     ports.TokenGenerator
	Mailer     ports.Mailer
	Events     ports.EventPublisher
	Logger     *slog.Logger
}

func (uc ProcessSubmissionUseCase) Execute(ctx context.Context, cmd ProcessSubmissionCommand) (ProcessResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	violations := uc.validate(cmd)

	// The duplicate check only considers unverified submissions: a
	// verified address resubmitting starts a fresh claim.
	email := entities.NormalizeEmail(cmd.Email)
	if email != "" {
		_, exists, err := uc.Repository.FindUnverifiedByEmail(ctx, email)
		if err != nil {
			return ProcessResult{}, err
		}
		if exists {
			violations = append(violations, violationDuplicateEmail)
		}
	}
	if len(violations) > 0 {
		logger.Warn("submission rejected",
			"event", "submission_rejected",
			"module", "claims/intake-service",
			"layer", "application",
			"violations", len(violations),
		)
		return ProcessResult{}, domainerrors.NewValidationError(violations)
	}

	submissionID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return ProcessResult{}, err
	}
	token, err := uc.Tokens.NewToken(ctx)
	if err != nil {
		return ProcessResult{}, err
	}

	entityType := entities.EntityType(strings.TrimSpace(cmd.EntityType))
	now := uc.Clock.Now().UTC()
	expiry := now.Add(entities.VerificationTTL)
	submission := entities.Submission{
		ID:                      submissionID,
		Email:                   email,
		Wallet:                  strings.TrimSpace(cmd.Wallet),
		EntityType:              entityType,
		MoltbookHandle:          strings.TrimSpace(cmd.MoltbookHandle),
		GithubRepo:              strings.TrimSpace(cmd.GithubRepo),
		RedditHandle:            strings.TrimSpace(cmd.RedditHandle),
		Description:             entities.TruncateDescription(cmd.Description),
		Newsletter:              cmd.Newsletter,
		TokenAmount:             entities.TokenAmountFor(entityType),
		AgentVerified:           entityType == entities.EntityTypeHuman,
		VerificationToken:       token,
		VerificationTokenExpiry: &expiry,
		SubmittedAt:             now,
	}

	// Persist before any dispatch attempt: the claim is recorded even if
	// the verification email never leaves.
	if err := uc.Repository.CreateSubmission(ctx, submission); err != nil {
		return ProcessResult{}, err
	}
	logger.Info("submission recorded",
		"event", "submission_recorded",
		"module", "claims/intake-service",
		"layer", "application",
		"submission_id", submission.ID,
		"entity_type", string(submission.EntityType),
		"token_amount", submission.TokenAmount,
	)
	publishEvent(ctx, uc.Events, uc.Logger, TopicSubmissionCreated, "submission", submission.ID, now,
		submissionCreatedPayload{
			SubmissionID: submission.ID,
			EntityType:   string(submission.EntityType),
			TokenAmount:  submission.TokenAmount,
			Newsletter:   submission.Newsletter,
		})

	dispatched := true
	if err := uc.Mailer.SendVerification(ctx, submission); err != nil {
		dispatched = false
		logger.Error("verification email dispatch failed",
			"event", "verification_email_failed",
			"module", "claims/intake-service",
			"layer", "application",
			"submission_id", submission.ID,
			"error", err.Error(),
		)
	}

	return ProcessResult{Submission: submission, EmailDispatched: dispatched}, nil
}

func (uc ProcessSubmissionUseCase) validate(cmd ProcessSubmissionCommand) []string {
	var violations []string

	if strings.TrimSpace(cmd.Email) == "" || !isValidEmail(strings.TrimSpace(cmd.Email)) {
		violations = append(violations, violationEmail)
	}
	if strings.TrimSpace(cmd.Wallet) == "" || !isValidWalletAddress(strings.TrimSpace(cmd.Wallet)) {
		violations = append(violations, violationWallet)
	}

	entityType := entities.EntityType(strings.TrimSpace(cmd.EntityType))
	if entityType != entities.EntityTypeHuman && entityType != entities.EntityTypeAgent {
		violations = append(violations, violationEntityType)
	}

	if entityType == entities.EntityTypeAgent {
		if strings.TrimSpace(cmd.MoltbookHandle) == "" {
			violations = append(violations, violationMoltbookHandle)
		}
		if strings.TrimSpace(cmd.GithubRepo) == "" {
			violations = append(violations, violationGithubMissing)
		} else if !isValidURL(cmd.GithubRepo) {
			violations = append(violations, violationGithubURL)
		}
	}
	return violations
}
