package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/nimbushq/auth-service/internal/config"
	"github.com/nimbushq/auth-service/internal/utils"
)

// Mailer delivers a verification code to an address out-of-band.
// Delivery may fail; the caller owns any compensation.
type Mailer interface {
	SendVerificationCode(ctx context.Context, toEmail, code string) error
}

type sendgridMailer struct {
	client *sendgrid.Client
	cfg    *config.Config
}

func NewSendGridMailer(cfg *config.Config) Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
	}
}

func (m *sendgridMailer) SendVerificationCode(ctx context.Context, toEmail, code string) error {
	from := mail.NewEmail(m.cfg.OrganizationName, m.cfg.FromEmail)
	to := mail.NewEmail("", toEmail)
	subject := m.cfg.OrganizationName + " - Email Verification Code"
	plainTextContent := fmt.Sprintf("Your verification OTP is: %s", code)
	htmlContent := fmt.Sprintf(
		verificationEmailHTML,
		"Verification Code",
		"Please use the following code to verify your email address. This code will expire in 10 minutes.",
		code,
		time.Now().Year(),
		m.cfg.OrganizationName,
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	if m.cfg.SendgridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	_, err := m.client.Send(message)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send verification email to %s via SendGrid", toEmail)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, err)
	}
	return nil
}
