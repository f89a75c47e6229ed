// File: /services/email_service.go
package services

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"fitcircle-api/config"
)

// EmailService sends transactional mail. When SMTP is not configured every
// send is a logged no-op, so local setups work without a mail server.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
	logger zerolog.Logger
}

func NewEmailService(cfg *config.Config, logger zerolog.Logger) *EmailService {
	var dialer *gomail.Dialer
	if cfg.SMTPHost != "" {
		dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	return &EmailService{
		config: cfg,
		dialer: dialer,
		logger: logger,
	}
}

// SendWelcomeEmail greets a freshly registered user.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	if es.dialer == nil {
		es.logger.Info().Str("email", email).Msg("SMTP not configured, skipping welcome email")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to FitCircle")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your FitCircle account is ready. Log your workouts, follow your
		training partners and share your progress.</p>
	`, name))

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
