package models

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeCode for the one_time_codes table. Each row belongs to
// exactly one user; rows are removed only as registration rollback
// or by the expired-code cleanup job.
type OneTimeCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
	IsUsed    bool
	CreatedAt time.Time
}
