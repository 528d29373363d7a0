package mocks

import (
	"context"
	"time"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockSessionRepository implements domain.SessionRepository interface for testing
type MockSessionRepository struct {
	CreateFunc             func(ctx context.Context, session *domain.Session) error
	FindWithUserFunc       func(ctx context.Context, token string) (*domain.SessionUser, error)
	DeleteByTokenFunc      func(ctx context.Context, token string) error
	DeleteByUserFunc       func(ctx context.Context, userID string) error
	DeleteOthersByUserFunc func(ctx context.Context, userID, keepToken string) error
	DeleteExpiredFunc      func(ctx context.Context, now time.Time) (int64, error)
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create stores a new session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// FindWithUser returns the session joined with its owner
func (m *MockSessionRepository) FindWithUser(ctx context.Context, token string) (*domain.SessionUser, error) {
	if m.FindWithUserFunc != nil {
		return m.FindWithUserFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// DeleteByToken removes one session
func (m *MockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.DeleteByTokenFunc != nil {
		return m.DeleteByTokenFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// DeleteByUser removes all of a user's sessions
func (m *MockSessionRepository) DeleteByUser(ctx context.Context, userID string) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// DeleteOthersByUser removes all of a user's sessions except one
func (m *MockSessionRepository) DeleteOthersByUser(ctx context.Context, userID, keepToken string) error {
	if m.DeleteOthersByUserFunc != nil {
		return m.DeleteOthersByUserFunc(ctx, userID, keepToken)
	}
	// Default behavior: success
	return nil
}

// DeleteExpired removes expired sessions
func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, now)
	}
	// Default behavior: nothing removed
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MockSessionRepository)(nil)
