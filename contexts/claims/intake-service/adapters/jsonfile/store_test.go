package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clawdrop/contexts/claims/intake-service/domain/entities"
	"clawdrop/contexts/claims/intake-service/ports"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "registry.json"), nil)
}

func sampleSubmission(id string, submittedAt time.Time) entities.Submission {
	expiry := submittedAt.Add(entities.VerificationTTL)
	return entities.Submission{
		ID:                      id,
		Email:                   id + "@example.com",
		Wallet:                  "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T",
		EntityType:              entities.EntityTypeHuman,
		Description:             "first claim",
		Newsletter:              true,
		TokenAmount:             entities.HumanTokenAmount,
		AgentVerified:           true,
		VerificationToken:       "token-" + id,
		VerificationTokenExpiry: &expiry,
		SubmittedAt:             submittedAt,
	}
}

func TestLoadMissingFileYieldsEmptyRegistry(t *testing.T) {
	store := tempStore(t)

	reg, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(reg.Submissions) != 0 || len(reg.Distributions) != 0 {
		t.Fatalf("expected empty registry, got %+v", reg)
	}
}

func TestLoadCorruptFileYieldsEmptyRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	store := NewStore(path, nil)

	reg, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(reg.Submissions) != 0 {
		t.Fatalf("corrupt file should yield empty registry, got %d submissions", len(reg.Submissions))
	}
}

func TestCreateAndRoundTrip(t *testing.T) {
	store := tempStore(t)
	submittedAt := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	original := sampleSubmission("aaa111", submittedAt)

	if err := store.CreateSubmission(context.Background(), original); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reg, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(reg.Submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(reg.Submissions))
	}
	got := reg.Submissions[0]
	if got.ID != original.ID || got.Email != original.Email || got.VerificationToken != original.VerificationToken {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.VerificationTokenExpiry == nil || !got.VerificationTokenExpiry.Equal(*original.VerificationTokenExpiry) {
		t.Fatalf("expiry not preserved: %v", got.VerificationTokenExpiry)
	}
}

func TestSaveLoadSaveIsByteStable(t *testing.T) {
	store := tempStore(t)
	submittedAt := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	for _, id := range []string{"aaa111", "bbb222"} {
		if err := store.CreateSubmission(context.Background(), sampleSubmission(id, submittedAt)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	first, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}

	reg, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := store.Save(reg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("re-read registry: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("save(load()) changed the document bytes")
	}
}

func TestDocumentShape(t *testing.T) {
	store := tempStore(t)
	submittedAt := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	if err := store.CreateSubmission(context.Background(), sampleSubmission("aaa111", submittedAt)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	data, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("read registry: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	for _, key := range []string{"submissions", "distributions"} {
		if _, ok := doc[key]; !ok {
			t.Fatalf("document missing %q collection", key)
		}
	}

	var records []map[string]any
	if err := json.Unmarshal(doc["submissions"], &records); err != nil {
		t.Fatalf("submissions not an array: %v", err)
	}
	for _, key := range []string{"id", "email", "wallet", "entityType", "verificationToken", "submittedAt", "tokenAmount", "agentVerified"} {
		if _, ok := records[0][key]; !ok {
			t.Fatalf("submission record missing %q field", key)
		}
	}
}

func TestUpdateAndFindByToken(t *testing.T) {
	store := tempStore(t)
	submittedAt := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	sub := sampleSubmission("aaa111", submittedAt)
	if err := store.CreateSubmission(context.Background(), sub); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := store.GetSubmissionByToken(context.Background(), sub.VerificationToken)
	if err != nil {
		t.Fatalf("get by token failed: %v", err)
	}
	if found.ID != sub.ID {
		t.Fatalf("found wrong submission: %s", found.ID)
	}

	verifiedAt := submittedAt.Add(time.Hour)
	found.VerifiedAt = &verifiedAt
	found.VerificationToken = ""
	found.VerificationTokenExpiry = nil
	if err := store.UpdateSubmission(context.Background(), found); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := store.GetSubmissionByToken(context.Background(), sub.VerificationToken); err == nil {
		t.Fatal("cleared token should no longer resolve")
	}
	verified, err := store.ListSubmissions(context.Background(), ports.FilterVerified)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(verified) != 1 {
		t.Fatalf("expected 1 verified submission, got %d", len(verified))
	}
}

func TestRecordDistributionPersistsBatchAndRows(t *testing.T) {
	store := tempStore(t)
	submittedAt := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	verifiedAt := submittedAt.Add(time.Hour)
	sub := sampleSubmission("aaa111", submittedAt)
	sub.VerifiedAt = &verifiedAt
	sub.VerificationToken = ""
	sub.VerificationTokenExpiry = nil
	if err := store.CreateSubmission(context.Background(), sub); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	distributedAt := submittedAt.Add(72 * time.Hour)
	sub.DistributedAt = &distributedAt
	sub.TransactionID = "tx-1"
	batch := entities.Distribution{ID: "batch-1", ExecutedAt: distributedAt, Submissions: 1, TokenTotal: 100}
	if err := store.RecordDistribution(context.Background(), batch, []entities.Submission{sub}); err != nil {
		t.Fatalf("record distribution failed: %v", err)
	}

	reg, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(reg.Distributions) != 1 || reg.Distributions[0].ID != "batch-1" {
		t.Fatalf("batch not recorded: %+v", reg.Distributions)
	}
	if reg.Submissions[0].TransactionID != "tx-1" || reg.Submissions[0].DistributedAt == nil {
		t.Fatalf("submission not stamped: %+v", reg.Submissions[0])
	}

	remaining, err := store.ListDistributable(context.Background())
	if err != nil {
		t.Fatalf("list distributable failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("distributed submission still eligible: %d", len(remaining))
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	store := tempStore(t)
	submittedAt := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	ids := []string{"ccc333", "aaa111", "bbb222"}
	for _, id := range ids {
		if err := store.CreateSubmission(context.Background(), sampleSubmission(id, submittedAt)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	items, err := store.ListSubmissions(context.Background(), ports.FilterAll)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i, id := range ids {
		if items[i].ID != id {
			t.Fatalf("position %d holds %s, want %s", i, items[i].ID, id)
		}
	}
}
