package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	twilio "github.com/twilio/twilio-go"

	"github.com/nimbushq/auth-service/internal/config"
	"github.com/nimbushq/auth-service/internal/dtos"
	"github.com/nimbushq/auth-service/internal/models"
	"github.com/nimbushq/auth-service/internal/repositories"
	"github.com/nimbushq/auth-service/internal/utils"
)

// ---------------------------------------------------------------------
// AuthService interface
// ---------------------------------------------------------------------
type AuthService interface {
	Register(ctx context.Context, req dtos.RegisterRequest) error
	VerifyOTP(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------
type authService struct {
	userRepo repositories.UserRepository
	codeRepo repositories.OneTimeCodeRepository
	mailer   Mailer
	tokens   TokenService

	cfg          *config.Config
	twilioClient *twilio.RestClient
}

func NewAuthService(
	userRepo repositories.UserRepository,
	codeRepo repositories.OneTimeCodeRepository,
	mailer Mailer,
	tokens TokenService,
	cfg *config.Config,
) AuthService {
	var twClient *twilio.RestClient
	if cfg.ValidatePhoneWithTwilio {
		twClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return &authService{
		userRepo:     userRepo,
		codeRepo:     codeRepo,
		mailer:       mailer,
		tokens:       tokens,
		cfg:          cfg,
		twilioClient: twClient,
	}
}

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------
func (s *authService) Register(ctx context.Context, req dtos.RegisterRequest) error {
	if !utils.IsValidEmail(req.Email) {
		return utils.ErrInvalidEmail
	}

	if s.cfg.ValidatePhoneWithTwilio {
		ok, err := utils.ValidatePhoneNumber(req.PhoneNumber, true, s.twilioClient)
		if err != nil {
			return err
		}
		if !ok {
			return utils.ErrInvalidPhone
		}
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if existing != nil {
		return utils.ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password, s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the lookup above;
		// the UNIQUE constraint on users.email is what actually decides.
		if isUniqueViolation(err) {
			return utils.ErrEmailExists
		}
		return err
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return err
	}
	otc := &models.OneTimeCode{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.cfg.VerificationCodeExpiry),
	}
	if err := s.codeRepo.Create(ctx, otc); err != nil {
		return err
	}

	if sendErr := s.mailer.SendVerificationCode(ctx, user.Email, code); sendErr != nil {
		// Compensate: take back both writes so a failed registration
		// leaves nothing behind. The deletes are best-effort; their own
		// failures are logged and swallowed.
		if delErr := s.codeRepo.Delete(ctx, otc.ID); delErr != nil {
			utils.Logger.WithError(delErr).Errorf("Compensation failed: could not delete one-time code %s", otc.ID)
		}
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			utils.Logger.WithError(delErr).Errorf("Compensation failed: could not delete user %s", user.ID)
		}
		return fmt.Errorf("%w: %v", utils.ErrExternalServiceFailure, sendErr)
	}

	return nil
}

// ---------------------------------------------------------------------
// VerifyOTP
// ---------------------------------------------------------------------
func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrUserNotFound
		}
		return err
	}

	rec, err := s.codeRepo.GetUnused(ctx, user.ID, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrInvalidCode
		}
		return err
	}

	// An expired code is left untouched, so resubmitting it keeps
	// producing the same error.
	if time.Now().After(rec.ExpiresAt) {
		return utils.ErrCodeExpired
	}

	// Code first, user second. The two writes are not transactional; a
	// crash in between consumes the code without verifying the user.
	if err := s.codeRepo.MarkUsed(ctx, rec.ID); err != nil {
		return err
	}
	return s.userRepo.MarkEmailVerified(ctx, user.ID)
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", utils.ErrInvalidCredentials
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", utils.ErrInvalidCredentials
	}

	// Deliberately not gated on IsEmailVerified.
	return s.tokens.IssueAccessToken(user.ID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
