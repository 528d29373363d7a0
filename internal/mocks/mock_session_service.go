package mocks

import (
	"context"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockSessionService implements domain.SessionService interface for testing
type MockSessionService struct {
	IssueFunc        func(ctx context.Context, userID, ip, userAgent string) (string, error)
	ValidateFunc     func(ctx context.Context, token string) (*domain.SessionInfo, error)
	RevokeFunc       func(ctx context.Context, token string) error
	RevokeAllFunc    func(ctx context.Context, userID string) error
	RevokeOthersFunc func(ctx context.Context, userID, keepToken string) error
}

// NewMockSessionService creates a new MockSessionService with default behaviors
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

// Issue opens a new session
func (m *MockSessionService) Issue(ctx context.Context, userID, ip, userAgent string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, userID, ip, userAgent)
	}
	// Default behavior: fixed token
	return "mock_session_token", nil
}

// Validate resolves a token to its session info
func (m *MockSessionService) Validate(ctx context.Context, token string) (*domain.SessionInfo, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// Revoke removes one session
func (m *MockSessionService) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// RevokeAll removes all of a user's sessions
func (m *MockSessionService) RevokeAll(ctx context.Context, userID string) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// RevokeOthers removes all of a user's sessions except one
func (m *MockSessionService) RevokeOthers(ctx context.Context, userID, keepToken string) error {
	if m.RevokeOthersFunc != nil {
		return m.RevokeOthersFunc(ctx, userID, keepToken)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionService = (*MockSessionService)(nil)
