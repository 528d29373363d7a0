package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Cheskazzzz/portal-master/domain"
)

// SMTPConfig holds SMTP connection settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements domain.Mailer over plain SMTP. A mailer with no
// credentials configured drops sends instead of failing the caller.
type SMTPMailer struct {
	config SMTPConfig
	audit  domain.AuditService
	logger *zap.Logger
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg SMTPConfig, audit domain.AuditService, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{config: cfg, audit: audit, logger: logger}
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn("smtp not configured, dropping email",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var msg strings.Builder
	msg.WriteString("From: " + m.config.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg.String()))

	details := map[string]any{"to": to, "subject": subject}
	if err != nil {
		details["error"] = err.Error()
		m.logger.Error("email send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
	m.audit.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionEmailSent,
		Resource: "email",
		Details:  details,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendWelcome implements domain.Mailer
func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf(`
		<h1>Welcome, %s!</h1>
		<p>Thank you for registering with Portal. We're excited to have you on board!</p>
		<p>If you have any questions, please don't hesitate to contact us.</p>
		<p>Best regards,<br>The Portal Team</p>`, name)
	return m.send(ctx, to, "Welcome to Portal!", body)
}

// SendPasswordReset implements domain.Mailer
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	body := fmt.Sprintf(`
		<h1>Password Reset Request</h1>
		<p>You requested to reset your password. Click the link below to reset it:</p>
		<p><a href="%s">Reset Password</a></p>
		<p>If you didn't request this, please ignore this email.</p>
		<p>This link will expire in 1 hour.</p>`, resetURL)
	return m.send(ctx, to, "Password Reset Request", body)
}

// SendVerification implements domain.Mailer
func (m *SMTPMailer) SendVerification(ctx context.Context, to, verifyURL string) error {
	body := fmt.Sprintf(`
		<h1>Verify your email</h1>
		<p>Click the link below to confirm your email address:</p>
		<p><a href="%s">Verify Email</a></p>
		<p>This link will expire in 24 hours.</p>`, verifyURL)
	return m.send(ctx, to, "Verify your email address", body)
}
