package mocks

import (
	"context"
	"sync"

	"github.com/Cheskazzzz/portal-master/domain"
)

// SentMail is one captured send
type SentMail struct {
	Kind string // "welcome", "reset" or "verification"
	To   string
	Arg  string // name or URL, depending on the kind
}

// MockMailer implements domain.Mailer interface for testing. Sends are
// captured for assertions.
type MockMailer struct {
	SendWelcomeFunc       func(ctx context.Context, to, name string) error
	SendPasswordResetFunc func(ctx context.Context, to, resetURL string) error
	SendVerificationFunc  func(ctx context.Context, to, verifyURL string) error

	mu   sync.Mutex
	sent []SentMail
}

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) record(kind, to, arg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{Kind: kind, To: to, Arg: arg})
}

// SendWelcome sends a welcome email
func (m *MockMailer) SendWelcome(ctx context.Context, to, name string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(ctx, to, name)
	}
	m.record("welcome", to, name)
	return nil
}

// SendPasswordReset sends a password reset email
func (m *MockMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(ctx, to, resetURL)
	}
	m.record("reset", to, resetURL)
	return nil
}

// SendVerification sends an email verification link
func (m *MockMailer) SendVerification(ctx context.Context, to, verifyURL string) error {
	if m.SendVerificationFunc != nil {
		return m.SendVerificationFunc(ctx, to, verifyURL)
	}
	m.record("verification", to, verifyURL)
	return nil
}

// Sent returns a snapshot of captured sends
func (m *MockMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
