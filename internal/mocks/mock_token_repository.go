package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockTokenRepository implements domain.TokenRepository interface for testing.
// With no funcs set it behaves as an in-memory store without expiry.
type MockTokenRepository struct {
	SetFunc    func(ctx context.Context, token, userID string, ttl time.Duration) error
	GetFunc    func(ctx context.Context, token string) (string, error)
	DeleteFunc func(ctx context.Context, token string) error

	mu     sync.Mutex
	tokens map[string]string
}

// NewMockTokenRepository creates a new MockTokenRepository
func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{tokens: map[string]string{}}
}

// Set stores a token
func (m *MockTokenRepository) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, token, userID, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = userID
	return nil
}

// Get resolves a token to its user ID
func (m *MockTokenRepository) Get(ctx context.Context, token string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	userID, ok := m.tokens[token]
	if !ok {
		return "", domain.ErrTokenInvalid
	}
	return userID, nil
}

// Delete removes a token
func (m *MockTokenRepository) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

// Compile-time interface compliance verification
var _ domain.TokenRepository = (*MockTokenRepository)(nil)
