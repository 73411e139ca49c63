package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"gopkg.in/gomail.v2"

	"github.com/awaleed99/bite-back0/internal/config"
)

// Notifier delivers one-time codes and password reset links to users.
type Notifier interface {
	SendOTP(ctx context.Context, phone, code string) error
	SendPasswordReset(ctx context.Context, email, token string) error
}

type Service struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
	production  bool
	logger      *slog.Logger
}

var _ Notifier = (*Service)(nil)

func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	s := &Service{
		from:        cfg.SMTP.From,
		frontendURL: cfg.FrontendURL,
		production:  cfg.IsProduction(),
		logger:      logger,
	}

	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP not configured, emails will only be logged")
		return s
	}

	s.dialer = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return s
}

// SendOTP has no SMS provider behind it yet; outside production the code is logged
// so it can be used during development.
func (s *Service) SendOTP(ctx context.Context, phone, code string) error {
	if s.production {
		s.logger.InfoContext(ctx, "otp issued", "phone", maskPhone(phone))
		return nil
	}
	s.logger.InfoContext(ctx, "otp issued", "phone", phone, "code", code)
	return nil
}

func (s *Service) SendPasswordReset(ctx context.Context, email, token string) error {
	link := s.resetLink(token)

	if s.dialer == nil {
		if s.production {
			s.logger.InfoContext(ctx, "email delivery disabled, password reset not sent", "to", email)
		} else {
			s.logger.InfoContext(ctx, "email delivery disabled, password reset link", "to", email, "link", link)
		}
		return nil
	}

	if err := s.dialer.DialAndSend(s.resetMessage(email, link)); err != nil {
		return fmt.Errorf("send password reset email: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset email sent", "to", email)
	return nil
}

func (s *Service) resetLink(token string) string {
	return s.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
}

func (s *Service) resetMessage(to, link string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reset your Bite Back password")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>We received a request to reset your password.</p>
		<p><a href="%s">Choose a new password</a></p>
		<p>If you did not ask for this, you can ignore this email.</p>
	`, link))
	return m
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "****" + phone[len(phone)-4:]
}
