package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"clawdrop/contexts/claims/intake-service/adapters/memory"
	"clawdrop/contexts/claims/intake-service/domain/entities"
	domainerrors "clawdrop/contexts/claims/intake-service/domain/errors"
)

func pendingSubmission(token string, now time.Time) entities.Submission {
	expiry := now.Add(entities.VerificationTTL)
	return entities.Submission{
		ID:                      "sub-1",
		Email:                   "claimant@example.com",
		Wallet:                  testWallet,
		EntityType:              entities.EntityTypeHuman,
		TokenAmount:             entities.HumanTokenAmount,
		VerificationToken:       token,
		VerificationTokenExpiry: &expiry,
		SubmittedAt:             now,
	}
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	store := memory.NewStore(nil)
	uc := VerifyEmailUseCase{
		Repository: store,
		Clock:      fixedClock{now: time.Now()},
	}

	_, err := uc.Execute(context.Background(), "no-such-token")
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	_, err = uc.Execute(context.Background(), "")
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("empty token: expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	issued := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	store := memory.NewStore([]entities.Submission{pendingSubmission("tok-1", issued)})
	uc := VerifyEmailUseCase{
		Repository: store,
		Clock:      fixedClock{now: issued.Add(entities.VerificationTTL + time.Minute)},
	}

	_, err := uc.Execute(context.Background(), "tok-1")
	if !errors.Is(err, domainerrors.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyEmailSucceedsOnce(t *testing.T) {
	issued := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	store := memory.NewStore([]entities.Submission{pendingSubmission("tok-1", issued)})
	publisher := &capturePublisher{}
	uc := VerifyEmailUseCase{
		Repository: store,
		Clock:      fixedClock{now: issued.Add(time.Hour)},
		Events:     publisher,
	}

	message, err := uc.Execute(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if message != VerifiedMessage {
		t.Fatalf("message = %q, want %q", message, VerifiedMessage)
	}

	items, err := store.ListSubmissions(context.Background(), "verified")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 verified submission, got %d", len(items))
	}
	if items[0].VerificationToken != "" || items[0].VerificationTokenExpiry != nil {
		t.Fatal("token must be cleared after verification")
	}
	if len(publisher.topics) != 1 || publisher.topics[0] != TopicSubmissionVerified {
		t.Fatalf("expected one %s event, got %v", TopicSubmissionVerified, publisher.topics)
	}

	// The cleared token can never be redeemed again.
	_, err = uc.Execute(context.Background(), "tok-1")
	if !errors.Is(err, domainerrors.ErrInvalidToken) {
		t.Fatalf("second redemption: expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyEmailAlreadyVerified(t *testing.T) {
	issued := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	verifiedAt := issued.Add(time.Hour)
	sub := pendingSubmission("tok-1", issued)
	sub.VerifiedAt = &verifiedAt
	store := memory.NewStore([]entities.Submission{sub})
	uc := VerifyEmailUseCase{
		Repository: store,
		Clock:      fixedClock{now: issued.Add(2 * time.Hour)},
	}

	_, err := uc.Execute(context.Background(), "tok-1")
	if !errors.Is(err, domainerrors.ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified, got %v", err)
	}
}
