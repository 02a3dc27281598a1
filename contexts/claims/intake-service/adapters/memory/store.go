package memory

import (
	"context"
	"sync"

	"clawdrop/contexts/claims/intake-service/domain/entities"
	domainerrors "clawdrop/contexts/claims/intake-service/domain/errors"
	"clawdrop/contexts/claims/intake-service/ports"
)

// Store is the in-memory repository used by tests and dev tooling.
// Submissions keep insertion order, matching the jsonfile registry.
type Store struct {
	mu sync.RWMutex

	submissions   []entities.Submission
	distributions []entities.Distribution
}

func NewStore(seed []entities.Submission) *Store {
	submissions := make([]entities.Submission, len(seed))
	copy(submissions, seed)
	return &Store{submissions: submissions}
}

func (s *Store) CreateSubmission(_ context.Context, submission entities.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions = append(s.submissions, submission)
	return nil
}

func (s *Store) UpdateSubmission(_ context.Context, submission entities.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submissions {
		if s.submissions[i].ID == submission.ID {
			s.submissions[i] = submission
			return nil
		}
	}
	return domainerrors.ErrSubmissionNotFound
}

func (s *Store) GetSubmissionByToken(_ context.Context, token string) (entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.submissions {
		if item.VerificationToken != "" && item.VerificationToken == token {
			return item, nil
		}
	}
	return entities.Submission{}, domainerrors.ErrSubmissionNotFound
}

func (s *Store) FindUnverifiedByEmail(_ context.Context, email string) (entities.Submission, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.submissions {
		if item.Email == email && !item.Verified() {
			return item, true, nil
		}
	}
	return entities.Submission{}, false, nil
}

func (s *Store) ListSubmissions(_ context.Context, filter ports.ListFilter) ([]entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Submission, 0, len(s.submissions))
	for _, item := range s.submissions {
		if matchesFilter(item, filter) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) ListDistributable(_ context.Context) ([]entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Submission, 0, len(s.submissions))
	for _, item := range s.submissions {
		if item.Distributable() {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) RecordDistribution(_ context.Context, batch entities.Distribution, updated []entities.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, submission := range updated {
		found := false
		for i := range s.submissions {
			if s.submissions[i].ID == submission.ID {
				s.submissions[i] = submission
				found = true
				break
			}
		}
		if !found {
			return domainerrors.ErrSubmissionNotFound
		}
	}
	s.distributions = append(s.distributions, batch)
	return nil
}

// Distributions exposes recorded batches for test assertions.
func (s *Store) Distributions() []entities.Distribution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Distribution, len(s.distributions))
	copy(out, s.distributions)
	return out
}

func matchesFilter(item entities.Submission, filter ports.ListFilter) bool {
	switch filter {
	case ports.FilterVerified:
		return item.Verified()
	case ports.FilterPending:
		return !item.Verified()
	case ports.FilterDistributed:
		return item.Distributed()
	default:
		return true
	}
}
