package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/nimbushq/auth-service/internal/models"
)

// UserRepository persists users. The users table enforces a UNIQUE
// constraint on email; Create surfaces a violation as a pgconn.PgError
// with SQLSTATE 23505, which is the only thing that closes the
// check-then-insert race between concurrent registrations.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

const baseSelectUser = `
    SELECT id, full_name, phone_number, email, password_hash,
           is_email_verified, created_at, updated_at
    FROM users
`

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	q := `
        INSERT INTO users (id, full_name, phone_number, email, password_hash)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, q, u.ID, u.FullName, u.PhoneNumber, u.Email, u.PasswordHash)
	return err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser+" WHERE email = $1", email)
	return scanUser(row)
}

func (r *userRepo) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE users SET is_email_verified = TRUE, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM users WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.PhoneNumber,
		&u.Email,
		&u.PasswordHash,
		&u.IsEmailVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
