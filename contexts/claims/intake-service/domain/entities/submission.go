package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

type EntityType string

const (
	EntityTypeHuman EntityType = "human"
	EntityTypeAgent EntityType = "agent"
)

const (
	// Token grants are fixed at creation and never recomputed.
	HumanTokenAmount = 100
	AgentTokenAmount = 200

	// VerificationTTL bounds how long an issued token can be redeemed.
	VerificationTTL = 24 * time.Hour

	// DescriptionLimit is the persisted free-text ceiling.
	DescriptionLimit = 500
)

// Submission is one airdrop claim moving through
// pending-verification -> verified -> distributed.
type Submission struct {
	ID             string
	Email          string
	Wallet         string
	EntityType     EntityType
	MoltbookHandle string
	GithubRepo     string
	RedditHandle   string
	Description    string
	Newsletter     bool

	TokenAmount   int
	AgentVerified bool

	VerificationToken       string
	VerificationTokenExpiry *time.Time

	SubmittedAt   time.Time
	VerifiedAt    *time.Time
	DistributedAt *time.Time
	TransactionID string
}

func (s Submission) Verified() bool {
	return s.VerifiedAt != nil
}

func (s Submission) Distributed() bool {
	return s.DistributedAt != nil
}

// Distributable reports whether a submission is eligible for the next
// distribution run.
func (s Submission) Distributable() bool {
	return s.Verified() && !s.Distributed()
}

// TokenExpired reports whether the verification window has closed.
// Only meaningful while the submission is unverified.
func (s Submission) TokenExpired(now time.Time) bool {
	return s.VerificationTokenExpiry != nil && now.After(*s.VerificationTokenExpiry)
}

// TokenAmountFor derives the fixed grant for an entity type.
func TokenAmountFor(entityType EntityType) int {
	if entityType == EntityTypeAgent {
		return AgentTokenAmount
	}
	return HumanTokenAmount
}

// NormalizeEmail lower-cases the contact address for dedupe comparisons
// and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TruncateDescription clamps free text to the persisted limit. The
// limit counts characters, not bytes, so a multi-byte rune is never
// split mid-sequence.
func TruncateDescription(text string) string {
	if utf8.RuneCountInString(text) <= DescriptionLimit {
		return text
	}
	return string([]rune(text)[:DescriptionLimit])
}

// Distribution records one executed batch run.
type Distribution struct {
	ID          string
	ExecutedAt  time.Time
	Submissions int
	TokenTotal  int
}

// Registry is the aggregate persisted as a single document by the
// jsonfile store. Submission order is insertion order and is preserved
// across load/save cycles.
type Registry struct {
	Submissions   []Submission
	Distributions []Distribution
}
