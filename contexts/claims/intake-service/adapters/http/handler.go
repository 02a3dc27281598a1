package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"clawdrop/contexts/claims/intake-service/application/commands"
	"clawdrop/contexts/claims/intake-service/application/queries"
	"clawdrop/contexts/claims/intake-service/domain/entities"
	"clawdrop/contexts/claims/intake-service/ports"
	httptransport "clawdrop/contexts/claims/intake-service/transport/http"
)

const (
	submittedMessage       = "Submission received. Verification email sent."
	submittedNoMailMessage = "Submission received. Verification email could not be sent; contact support if it does not arrive."
)

type Handler struct {
	Process    commands.ProcessSubmissionUseCase
	Verify     commands.VerifyEmailUseCase
	Distribute commands.DistributeTokensUseCase
	Queries    queries.RegistryQueries
	Logger     *slog.Logger
}

func (h Handler) SubmitHandler(ctx context.Context, req httptransport.SubmitRequest) (httptransport.SubmitResponse, error) {
	result, err := h.Process.Execute(ctx, commands.ProcessSubmissionCommand{
		Email:          req.Email,
		Wallet:         req.Wallet,
		EntityType:     req.EntityType,
		MoltbookHandle: req.MoltbookHandle,
		GithubRepo:     req.GithubRepo,
		RedditHandle:   req.RedditHandle,
		Description:    req.Description,
		Newsletter:     bool(req.Newsletter),
	})
	if err != nil {
		return httptransport.SubmitResponse{}, err
	}
	message := submittedMessage
	if !result.EmailDispatched {
		message = submittedNoMailMessage
	}
	return httptransport.SubmitResponse{
		Success:      true,
		Message:      message,
		SubmissionID: result.Submission.ID,
	}, nil
}

func (h Handler) VerifyHandler(ctx context.Context, token string) (httptransport.VerifyResponse, error) {
	message, err := h.Verify.Execute(ctx, token)
	if err != nil {
		return httptransport.VerifyResponse{}, err
	}
	return httptransport.VerifyResponse{Success: true, Message: message}, nil
}

func (h Handler) ListHandler(ctx context.Context, filter ports.ListFilter) (httptransport.ListResponse, error) {
	items, err := h.Queries.List(ctx, filter)
	if err != nil {
		return httptransport.ListResponse{}, err
	}
	stats, err := h.Queries.Stats(ctx)
	if err != nil {
		return httptransport.ListResponse{}, err
	}
	result := make([]httptransport.SubmissionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapSubmission(item))
	}
	return httptransport.ListResponse{
		Success: true,
		Items:   result,
		Stats: httptransport.StatsDTO{
			Total:             stats.Total,
			Verified:          stats.Verified,
			Pending:           stats.Pending,
			Expired:           stats.Expired,
			Distributed:       stats.Distributed,
			TokensCommitted:   stats.TokensCommitted,
			TokensDistributed: stats.TokensDistributed,
		},
	}, nil
}

func mapSubmission(item entities.Submission) httptransport.SubmissionDTO {
	dto := httptransport.SubmissionDTO{
		ID:            item.ID,
		Email:         item.Email,
		Wallet:        item.Wallet,
		EntityType:    string(item.EntityType),
		TokenAmount:   item.TokenAmount,
		AgentVerified: item.AgentVerified,
		SubmittedAt:   item.SubmittedAt.Format(time.RFC3339),
		TransactionID: item.TransactionID,
	}
	if item.VerifiedAt != nil {
		dto.VerifiedAt = item.VerifiedAt.Format(time.RFC3339)
	}
	if item.DistributedAt != nil {
		dto.DistributedAt = item.DistributedAt.Format(time.RFC3339)
	}
	return dto
}
