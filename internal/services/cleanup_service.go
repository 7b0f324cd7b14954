package services

import (
	"context"

	"github.com/nimbushq/auth-service/internal/repositories"
	"github.com/nimbushq/auth-service/internal/utils"
)

// CleanupService handles purging one-time codes that expired unused.
type CleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type cleanupService struct {
	codeRepo repositories.OneTimeCodeRepository
}

func NewCleanupService(codeRepo repositories.OneTimeCodeRepository) CleanupService {
	return &cleanupService{codeRepo: codeRepo}
}

// CleanupDaily deletes expired unused codes and logs any errors encountered.
func (s *cleanupService) CleanupDaily(ctx context.Context) error {
	if err := s.codeRepo.CleanupExpired(ctx); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup one_time_codes")
		return err
	}

	utils.Logger.Info("Daily one-time-code cleanup completed successfully.")
	return nil
}
