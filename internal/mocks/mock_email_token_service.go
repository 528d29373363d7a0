package mocks

import (
	"strings"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockEmailTokenService implements domain.EmailTokenService interface for testing
type MockEmailTokenService struct {
	GenerateFunc func(userID string) (string, error)
	ParseFunc    func(token string) (string, error)
}

// NewMockEmailTokenService creates a new MockEmailTokenService with default behaviors
func NewMockEmailTokenService() *MockEmailTokenService {
	return &MockEmailTokenService{}
}

// Generate issues a token for the user
func (m *MockEmailTokenService) Generate(userID string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	// Default behavior: reversible fake token
	return "token_" + userID, nil
}

// Parse returns the user ID the token was issued for
func (m *MockEmailTokenService) Parse(token string) (string, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(token)
	}
	// Default behavior: reverses the fake token scheme
	if userID, ok := strings.CutPrefix(token, "token_"); ok {
		return userID, nil
	}
	return "", domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.EmailTokenService = (*MockEmailTokenService)(nil)
