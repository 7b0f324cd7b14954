package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nimbushq/auth-service/internal/dtos"
	"github.com/nimbushq/auth-service/internal/services"
	"github.com/nimbushq/auth-service/internal/utils"
)

type AuthController struct {
	authService services.AuthService
}

func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

var validate = validator.New()

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload.", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Missing required fields.", err)
		return
	}

	if err := c.authService.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidEmail):
			utils.RespondError(w, http.StatusBadRequest, "Invalid email format.")
		case errors.Is(err, utils.ErrInvalidPhone):
			utils.RespondError(w, http.StatusBadRequest, "Invalid phone number.")
		case errors.Is(err, utils.ErrEmailExists):
			utils.RespondError(w, http.StatusConflict, "Email already registered.")
		case errors.Is(err, utils.ErrExternalServiceFailure):
			utils.RespondError(w, http.StatusInternalServerError,
				"Failed to send verification email. Please try again later.", err)
		default:
			utils.RespondError(w, http.StatusInternalServerError,
				"Server error. Please try again later.", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Registration successful. Please verify your email.",
	})
}

// ---------------------------------------------------------------------
// VerifyOTP
// ---------------------------------------------------------------------
func (c *AuthController) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid payload.", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Missing required fields.", err)
		return
	}

	if err := c.authService.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, utils.ErrUserNotFound):
			utils.RespondError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, utils.ErrInvalidCode):
			utils.RespondError(w, http.StatusBadRequest, "Invalid OTP.")
		case errors.Is(err, utils.ErrCodeExpired):
			utils.RespondError(w, http.StatusBadRequest, "OTP expired.")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Server error", err)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Email verified successfully.",
	})
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondLoginError(w, http.StatusBadRequest, "Invalid payload.", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondLoginError(w, http.StatusBadRequest, "Missing required fields.", err)
		return
	}

	token, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			// Same body whether the email is unknown or the password is
			// wrong, so the response never reveals account existence.
			respondLoginError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondLoginError(w, http.StatusInternalServerError, "Server error", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   &token,
	})
}

// respondLoginError keeps the token field present (and null) on every
// login failure.
func respondLoginError(w http.ResponseWriter, status int, publicMessage string, devErrs ...error) {
	utils.RespondWithJSON(w, status, dtos.LoginResponse{
		Success: false,
		Message: publicMessage,
		Token:   nil,
	})
	if len(devErrs) > 0 && devErrs[0] != nil {
		utils.Logger.WithError(devErrs[0]).Error(publicMessage)
	}
}
