package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nimbushq/auth-service/internal/config"
)

const TokenIssuer = "nimbus-auth"

// TokenService issues signed access tokens binding a user's identity.
type TokenService interface {
	IssueAccessToken(userID uuid.UUID) (string, error)
}

type tokenService struct {
	secret      []byte
	tokenExpiry time.Duration
}

// NewTokenService takes the signing secret from the injected config;
// there is no rotation and no second active key.
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret:      cfg.JWTSecret,
		tokenExpiry: cfg.TokenExpiry,
	}
}

func (s *tokenService) IssueAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": TokenIssuer,
		"sub": userID.String(),
		"exp": now.Add(s.tokenExpiry).Unix(),
		"iat": now.Unix(),
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
