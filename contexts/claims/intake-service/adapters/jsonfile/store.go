package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"clawdrop/contexts/claims/intake-service/domain/entities"
	domainerrors "clawdrop/contexts/claims/intake-service/domain/errors"
	"clawdrop/contexts/claims/intake-service/ports"

	"github.com/gofrs/flock"
)

// Store persists the whole registry as one JSON document. Every mutation
// is load, mutate in memory, write back; writes are not atomic and the
// last writer wins. An advisory flock serializes invocations on the same
// host, but nothing protects two hosts sharing the file. Acceptable for
// a single-instance, low-volume deployment only.
type Store struct {
	mu     sync.Mutex
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}
}

type registryDocument struct {
	Submissions   []submissionRecord   `json:"submissions"`
	Distributions []distributionRecord `json:"distributions"`
}

type submissionRecord struct {
	ID                      string     `json:"id"`
	Email                   string     `json:"email"`
	Wallet                  string     `json:"wallet"`
	EntityType              string     `json:"entityType"`
	MoltbookHandle          *string    `json:"moltbookHandle"`
	GithubRepo              *string    `json:"githubRepo"`
	RedditHandle            *string    `json:"redditHandle"`
	Description             string     `json:"description"`
	Newsletter              bool       `json:"newsletter"`
	VerificationToken       *string    `json:"verificationToken"`
	VerificationTokenExpiry *time.Time `json:"verificationTokenExpiry"`
	VerifiedAt              *time.Time `json:"verifiedAt"`
	SubmittedAt             time.Time  `json:"submittedAt"`
	TokenAmount             int        `json:"tokenAmount"`
	AgentVerified           bool       `json:"agentVerified"`
	DistributedAt           *time.Time `json:"distributedAt,omitempty"`
	TransactionID           *string    `json:"transactionId,omitempty"`
}

type distributionRecord struct {
	ID          string    `json:"id"`
	ExecutedAt  time.Time `json:"executedAt"`
	Submissions int       `json:"submissions"`
	TokenTotal  int       `json:"tokenTotal"`
}

func (s *Store) CreateSubmission(ctx context.Context, submission entities.Submission) error {
	return s.mutate(func(reg *entities.Registry) error {
		reg.Submissions = append(reg.Submissions, submission)
		return nil
	})
}

func (s *Store) UpdateSubmission(ctx context.Context, submission entities.Submission) error {
	return s.mutate(func(reg *entities.Registry) error {
		for i := range reg.Submissions {
			if reg.Submissions[i].ID == submission.ID {
				reg.Submissions[i] = submission
				return nil
			}
		}
		return domainerrors.ErrSubmissionNotFound
	})
}

func (s *Store) GetSubmissionByToken(ctx context.Context, token string) (entities.Submission, error) {
	reg, err := s.Load()
	if err != nil {
		return entities.Submission{}, err
	}
	for _, item := range reg.Submissions {
		if item.VerificationToken != "" && item.VerificationToken == token {
			return item, nil
		}
	}
	return entities.Submission{}, domainerrors.ErrSubmissionNotFound
}

func (s *Store) FindUnverifiedByEmail(ctx context.Context, email string) (entities.Submission, bool, error) {
	reg, err := s.Load()
	if err != nil {
		return entities.Submission{}, false, err
	}
	for _, item := range reg.Submissions {
		if item.Email == email && !item.Verified() {
			return item, true, nil
		}
	}
	return entities.Submission{}, false, nil
}

func (s *Store) ListSubmissions(ctx context.Context, filter ports.ListFilter) ([]entities.Submission, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}
	items := make([]entities.Submission, 0, len(reg.Submissions))
	for _, item := range reg.Submissions {
		switch filter {
		case ports.FilterVerified:
			if !item.Verified() {
				continue
			}
		case ports.FilterPending:
			if item.Verified() {
				continue
			}
		case ports.FilterDistributed:
			if !item.Distributed() {
				continue
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *Store) ListDistributable(ctx context.Context) ([]entities.Submission, error) {
	reg, err := s.Load()
	if err != nil {
		return nil, err
	}
	items := make([]entities.Submission, 0, len(reg.Submissions))
	for _, item := range reg.Submissions {
		if item.Distributable() {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) RecordDistribution(ctx context.Context, batch entities.Distribution, updated []entities.Submission) error {
	return s.mutate(func(reg *entities.Registry) error {
		for _, submission := range updated {
			found := false
			for i := range reg.Submissions {
				if reg.Submissions[i].ID == submission.ID {
					reg.Submissions[i] = submission
					found = true
					break
				}
			}
			if !found {
				return domainerrors.ErrSubmissionNotFound
			}
		}
		reg.Distributions = append(reg.Distributions, batch)
		return nil
	})
}

// Load reads the registry document. A missing file and an unparseable
// file both yield an empty registry: the intake never refuses to start
// on corrupt state.
func (s *Store) Load() (entities.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (entities.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entities.Registry{}, nil
		}
		return entities.Registry{}, fmt.Errorf("reading registry: %w", err)
	}

	var doc registryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("registry file unparseable, starting empty",
			"event", "registry_parse_failed",
			"module", "claims/intake-service",
			"layer", "adapter",
			"path", s.path,
			"error", err.Error(),
		)
		return entities.Registry{}, nil
	}
	return doc.toRegistry(), nil
}

// Save overwrites the registry document. Two-space indentation keeps the
// on-disk format stable for round-trip comparisons.
func (s *Store) Save(reg entities.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(reg)
}

func (s *Store) saveLocked(reg entities.Registry) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating registry directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(documentFromRegistry(reg), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}

func (s *Store) mutate(fn func(reg *entities.Registry) error) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("locking registry: %w", err)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("registry unlock failed",
				"event", "registry_unlock_failed",
				"module", "claims/intake-service",
				"layer", "adapter",
				"error", err.Error(),
			)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.loadLocked()
	if err != nil {
		return err
	}
	if err := fn(&reg); err != nil {
		return err
	}
	return s.saveLocked(reg)
}

func (doc registryDocument) toRegistry() entities.Registry {
	reg := entities.Registry{
		Submissions:   make([]entities.Submission, 0, len(doc.Submissions)),
		Distributions: make([]entities.Distribution, 0, len(doc.Distributions)),
	}
	for _, record := range doc.Submissions {
		reg.Submissions = append(reg.Submissions, record.toEntity())
	}
	for _, record := range doc.Distributions {
		reg.Distributions = append(reg.Distributions, entities.Distribution{
			ID:          record.ID,
			ExecutedAt:  record.ExecutedAt,
			Submissions: record.Submissions,
			TokenTotal:  record.TokenTotal,
		})
	}
	return reg
}

func documentFromRegistry(reg entities.Registry) registryDocument {
	doc := registryDocument{
		Submissions:   make([]submissionRecord, 0, len(reg.Submissions)),
		Distributions: make([]distributionRecord, 0, len(reg.Distributions)),
	}
	for _, item := range reg.Submissions {
		doc.Submissions = append(doc.Submissions, recordFromEntity(item))
	}
	for _, batch := range reg.Distributions {
		doc.Distributions = append(doc.Distributions, distributionRecord{
			ID:          batch.ID,
			ExecutedAt:  batch.ExecutedAt,
			Submissions: batch.Submissions,
			TokenTotal:  batch.TokenTotal,
		})
	}
	return doc
}

func (r submissionRecord) toEntity() entities.Submission {
	return entities.Submission{
		ID:                      r.ID,
		Email:                   r.Email,
		Wallet:                  r.Wallet,
		EntityType:              entities.EntityType(r.EntityType),
		MoltbookHandle:          stringValue(r.MoltbookHandle),
		GithubRepo:              stringValue(r.GithubRepo),
		RedditHandle:            stringValue(r.RedditHandle),
		Description:             r.Description,
		Newsletter:              r.Newsletter,
		VerificationToken:       stringValue(r.VerificationToken),
		VerificationTokenExpiry: r.VerificationTokenExpiry,
		VerifiedAt:              r.VerifiedAt,
		SubmittedAt:             r.SubmittedAt,
		TokenAmount:             r.TokenAmount,
		AgentVerified:           r.AgentVerified,
		DistributedAt:           r.DistributedAt,
		TransactionID:           stringValue(r.TransactionID),
	}
}

func recordFromEntity(item entities.Submission) submissionRecord {
	return submissionRecord{
		ID:                      item.ID,
		Email:                   item.Email,
		Wallet:                  item.Wallet,
		EntityType:              string(item.EntityType),
		MoltbookHandle:          nullableString(item.MoltbookHandle),
		GithubRepo:              nullableString(item.GithubRepo),
		RedditHandle:            nullableString(item.RedditHandle),
		Description:             item.Description,
		Newsletter:              item.Newsletter,
		VerificationToken:       nullableString(item.VerificationToken),
		VerificationTokenExpiry: item.VerificationTokenExpiry,
		VerifiedAt:              item.VerifiedAt,
		SubmittedAt:             item.SubmittedAt,
		TokenAmount:             item.TokenAmount,
		AgentVerified:           item.AgentVerified,
		DistributedAt:           item.DistributedAt,
		TransactionID:           nullableString(item.TransactionID),
	}
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

var _ ports.Repository = (*Store)(nil)
