package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/nimbushq/auth-service/internal/models"
)

type OneTimeCodeRepository interface {
	Create(ctx context.Context, c *models.OneTimeCode) error
	// GetUnused returns the newest row matching (user, code, is_used=false).
	// A miss does not distinguish a wrong code from an already-used one.
	GetUnused(ctx context.Context, userID uuid.UUID, code string) (*models.OneTimeCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CleanupExpired(ctx context.Context) error
}

type oneTimeCodeRepo struct {
	db DB
}

func NewOneTimeCodeRepository(db DB) OneTimeCodeRepository {
	return &oneTimeCodeRepo{db: db}
}

func (r *oneTimeCodeRepo) Create(ctx context.Context, c *models.OneTimeCode) error {
	q := `
        INSERT INTO one_time_codes (id, user_id, code, expires_at, is_used, created_at)
        VALUES ($1, $2, $3, $4, FALSE, NOW())
    `
	_, err := r.db.Exec(ctx, q, c.ID, c.UserID, c.Code, c.ExpiresAt)
	return err
}

func (r *oneTimeCodeRepo) GetUnused(ctx context.Context, userID uuid.UUID, code string) (*models.OneTimeCode, error) {
	q := `
        SELECT id, user_id, code, expires_at, is_used, created_at
        FROM one_time_codes
        WHERE user_id = $1 AND code = $2 AND is_used = FALSE
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, q, userID, code)
	var rec models.OneTimeCode
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Code,
		&rec.ExpiresAt,
		&rec.IsUsed,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *oneTimeCodeRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE one_time_codes SET is_used = TRUE WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

func (r *oneTimeCodeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM one_time_codes WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

// CleanupExpired prunes codes that expired without ever being used.
// Used codes stay behind as an audit trail.
func (r *oneTimeCodeRepo) CleanupExpired(ctx context.Context) error {
	q := `DELETE FROM one_time_codes WHERE is_used = FALSE AND expires_at < NOW()`
	_, err := r.db.Exec(ctx, q)
	return err
}
