package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"clawdrop/contexts/claims/intake-service/domain/entities"
	domainerrors "clawdrop/contexts/claims/intake-service/domain/errors"
	"clawdrop/contexts/claims/intake-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository is the production store for deployments that outgrow the
// flat JSON registry. Same port, row-level statements, and a real
// transaction around each distribution batch.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates the submission and distribution tables.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&submissionModel{}, &distributionModel{})
}

func (r *Repository) CreateSubmission(ctx context.Context, submission entities.Submission) error {
	row := submissionModelFromEntity(submission)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("submission id or token collision: %w", err)
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateSubmission(ctx context.Context, submission entities.Submission) error {
	row := submissionModelFromEntity(submission)
	result := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("id = ?", strings.TrimSpace(submission.ID)).
		Select("*").
		Omit("id", "submitted_at").
		Updates(&row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrSubmissionNotFound
	}
	return nil
}

func (r *Repository) GetSubmissionByToken(ctx context.Context, token string) (entities.Submission, error) {
	var row submissionModel
	err := r.db.WithContext(ctx).
		Where("verification_token = ?", token).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Submission{}, domainerrors.ErrSubmissionNotFound
		}
		return entities.Submission{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindUnverifiedByEmail(ctx context.Context, email string) (entities.Submission, bool, error) {
	var row submissionModel
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("verified_at IS NULL").
		Order("submitted_at ASC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Submission{}, false, nil
		}
		return entities.Submission{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListSubmissions(ctx context.Context, filter ports.ListFilter) ([]entities.Submission, error) {
	tx := r.db.WithContext(ctx).Model(&submissionModel{})
	switch filter {
	case ports.FilterVerified:
		tx = tx.Where("verified_at IS NOT NULL")
	case ports.FilterPending:
		tx = tx.Where("verified_at IS NULL")
	case ports.FilterDistributed:
		tx = tx.Where("distributed_at IS NOT NULL")
	}

	var rows []submissionModel
	if err := tx.Order("submitted_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Submission, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListDistributable(ctx context.Context) ([]entities.Submission, error) {
	var rows []submissionModel
	err := r.db.WithContext(ctx).
		Where("verified_at IS NOT NULL").
		Where("distributed_at IS NULL").
		Order("submitted_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Submission, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) RecordDistribution(ctx context.Context, batch entities.Distribution, updated []entities.Submission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, submission := range updated {
			result := tx.Model(&submissionModel{}).
				Where("id = ?", submission.ID).
				Updates(map[string]any{
					"distributed_at": submission.DistributedAt,
					"transaction_id": nullable(submission.TransactionID),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerrors.ErrSubmissionNotFound
			}
		}
		row := distributionModel{
			ID:          batch.ID,
			ExecutedAt:  batch.ExecutedAt,
			Submissions: batch.Submissions,
			TokenTotal:  batch.TokenTotal,
		}
		return tx.Create(&row).Error
	})
}

type submissionModel struct {
	ID                      string     `gorm:"column:id;primaryKey"`
	Email                   string     `gorm:"column:email;index"`
	Wallet                  string     `gorm:"column:wallet"`
	EntityType              string     `gorm:"column:entity_type"`
	MoltbookHandle          *string    `gorm:"column:moltbook_handle"`
	GithubRepo              *string    `gorm:"column:github_repo"`
	RedditHandle            *string    `gorm:"column:reddit_handle"`
	Description             string     `gorm:"column:description"`
	Newsletter              bool       `gorm:"column:newsletter"`
	VerificationToken       *string    `gorm:"column:verification_token;uniqueIndex"`
	VerificationTokenExpiry *time.Time `gorm:"column:verification_token_expiry"`
	VerifiedAt              *time.Time `gorm:"column:verified_at"`
	SubmittedAt             time.Time  `gorm:"column:submitted_at"`
	TokenAmount             int        `gorm:"column:token_amount"`
	AgentVerified           bool       `gorm:"column:agent_verified"`
	DistributedAt           *time.Time `gorm:"column:distributed_at"`
	TransactionID           *string    `gorm:"column:transaction_id"`
}

func (submissionModel) TableName() string { return "airdrop_submissions" }

type distributionModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	ExecutedAt  time.Time `gorm:"column:executed_at"`
	Submissions int       `gorm:"column:submissions"`
	TokenTotal  int       `gorm:"column:token_total"`
}

func (distributionModel) TableName() string { return "airdrop_distributions" }

func submissionModelFromEntity(item entities.Submission) submissionModel {
	return submissionModel{
		ID:                      item.ID,
		Email:                   item.Email,
		Wallet:                  item.Wallet,
		EntityType:              string(item.EntityType),
		MoltbookHandle:          nullable(item.MoltbookHandle),
		GithubRepo:              nullable(item.GithubRepo),
		RedditHandle:            nullable(item.RedditHandle),
		Description:             item.Description,
		Newsletter:              item.Newsletter,
		VerificationToken:       nullable(item.VerificationToken),
		VerificationTokenExpiry: item.VerificationTokenExpiry,
		VerifiedAt:              item.VerifiedAt,
		SubmittedAt:             item.SubmittedAt,
		TokenAmount:             item.TokenAmount,
		AgentVerified:           item.AgentVerified,
		DistributedAt:           item.DistributedAt,
		TransactionID:           nullable(item.TransactionID),
	}
}

func (row submissionModel) toEntity() entities.Submission {
	return entities.Submission{
		ID:                      row.ID,
		Email:                   row.Email,
		Wallet:                  row.Wallet,
		EntityType:              entities.EntityType(row.EntityType),
		MoltbookHandle:          deref(row.MoltbookHandle),
		GithubRepo:              deref(row.GithubRepo),
		RedditHandle:            deref(row.RedditHandle),
		Description:             row.Description,
		Newsletter:              row.Newsletter,
		VerificationToken:       deref(row.VerificationToken),
		VerificationTokenExpiry: row.VerificationTokenExpiry,
		VerifiedAt:              row.VerifiedAt,
		SubmittedAt:             row.SubmittedAt,
		TokenAmount:             row.TokenAmount,
		AgentVerified:           row.AgentVerified,
		DistributedAt:           row.DistributedAt,
		TransactionID:           deref(row.TransactionID),
	}
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
