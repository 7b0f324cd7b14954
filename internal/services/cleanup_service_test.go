package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nimbushq/auth-service/internal/models"
)

func TestCleanupDailyPrunesExpiredUnusedCodes(t *testing.T) {
	codes := newFakeCodeRepo()
	ctx := context.Background()

	expired := &models.OneTimeCode{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Code:      "111111",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	usedExpired := &models.OneTimeCode{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Code:      "222222",
		ExpiresAt: time.Now().Add(-time.Hour),
		IsUsed:    true,
	}
	live := &models.OneTimeCode{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Code:      "333333",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, codes.Create(ctx, expired))
	require.NoError(t, codes.Create(ctx, usedExpired))
	require.NoError(t, codes.Create(ctx, live))

	svc := NewCleanupService(codes)
	require.NoError(t, svc.CleanupDaily(ctx))

	_, ok := codes.codes[expired.ID]
	require.False(t, ok, "expired unused code should be pruned")
	_, ok = codes.codes[usedExpired.ID]
	require.True(t, ok, "used codes stay behind")
	_, ok = codes.codes[live.ID]
	require.True(t, ok, "live codes stay behind")
}
