package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrInvalidEmail       = errors.New("invalid_email")
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidPhone       = errors.New("invalid_phone")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCode        = errors.New("invalid_code")
	ErrCodeExpired        = errors.New("code_expired")
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// For external service failures (e.g., SendGrid)
	ErrExternalServiceFailure = errors.New("external_service_failure")
)
