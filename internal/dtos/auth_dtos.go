package dtos

// ----------------------
// Requests
// ----------------------

// Email format is deliberately not enforced here; the service applies
// the accepted address pattern itself and owns the 400 for it.
type RegisterRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// The code keeps its plain string shape here; a malformed code is just a
// lookup miss, not a payload error.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ----------------------
// Responses
// ----------------------

// LoginResponse always carries the token field; it is null on failure so
// the unknown-email and wrong-password bodies are indistinguishable.
type LoginResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Token   *string `json:"token"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
