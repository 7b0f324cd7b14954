package config

import (
	"os"
	"strconv"
	"time"

	"github.com/nimbushq/auth-service/internal/utils"
)

// Config holds all application configuration. The JWT secret lives here
// and is injected into whatever needs it; nothing reads it from the
// environment after startup.
type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	DBUrl            string

	JWTSecret   []byte
	TokenExpiry time.Duration

	BcryptCost int

	VerificationCodeExpiry time.Duration

	SendGridAPIKey      string
	FromEmail           string
	SendgridSandboxMode bool

	TwilioAccountSID        string
	TwilioAuthToken         string
	ValidatePhoneWithTwilio bool
}

const (
	DefaultOrganizationName       = "Nimbus"
	DefaultTokenExpiry            = 1 * time.Hour
	DefaultVerificationCodeExpiry = 10 * time.Minute
	DefaultBcryptCost             = 10
)

// LoadConfig reads configuration from the environment and fails fast on
// anything the service cannot run without.
func LoadConfig(appName string) *Config {
	utils.Logger.Info("Loading config for app: ", appName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbUrl := os.Getenv("DATABASE_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}
	sendGridKey := os.Getenv("SENDGRID_API_KEY")
	if sendGridKey == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY env var is missing")
	}
	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		utils.Logger.Fatal("FROM_EMAIL env var is missing")
	}

	orgName := os.Getenv("ORGANIZATION_NAME")
	if orgName == "" {
		orgName = DefaultOrganizationName
	}

	cfg := &Config{
		OrganizationName: orgName,
		AppName:          appName,
		AppPort:          appPort,
		AppUrl:           appUrl,
		DBUrl:            dbUrl,

		JWTSecret:   []byte(jwtSecret),
		TokenExpiry: DefaultTokenExpiry,

		BcryptCost: DefaultBcryptCost,

		VerificationCodeExpiry: DefaultVerificationCodeExpiry,

		SendGridAPIKey:      sendGridKey,
		FromEmail:           fromEmail,
		SendgridSandboxMode: envBool("SENDGRID_SANDBOX_MODE"),

		TwilioAccountSID:        os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:         os.Getenv("TWILIO_AUTH_TOKEN"),
		ValidatePhoneWithTwilio: envBool("VALIDATE_PHONE_WITH_TWILIO"),
	}

	if cfg.ValidatePhoneWithTwilio && (cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "") {
		utils.Logger.Fatal("VALIDATE_PHONE_WITH_TWILIO is set but Twilio credentials are missing")
	}

	return cfg
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
