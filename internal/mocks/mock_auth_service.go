package mocks

import (
	"context"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	LoginFunc                func(ctx context.Context, input domain.LoginInput) (*domain.User, string, error)
	LogoutFunc               func(ctx context.Context, token, ip, userAgent string) error
	ChangePasswordFunc       func(ctx context.Context, userID, current, next, keepToken string) error
	RequestPasswordResetFunc func(ctx context.Context, email, ip, userAgent string) error
	ResetPasswordFunc        func(ctx context.Context, token, newPassword string) error
	VerifyEmailFunc          func(ctx context.Context, token string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new account
func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	// Default behavior: echo the input back as a new user
	return &domain.User{ID: "u-1", Name: input.Name, Email: input.Email, RoleID: 2, IsActive: true}, "mock_session_token", nil
}

// Login authenticates credentials
func (m *MockAuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, input)
	}
	// Default behavior: rejected
	return nil, "", domain.ErrInvalidCredentials
}

// Logout revokes a session
func (m *MockAuthService) Logout(ctx context.Context, token, ip, userAgent string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, token, ip, userAgent)
	}
	// Default behavior: success
	return nil
}

// ChangePassword rotates a password
func (m *MockAuthService) ChangePassword(ctx context.Context, userID, current, next, keepToken string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, current, next, keepToken)
	}
	// Default behavior: success
	return nil
}

// RequestPasswordReset starts the reset flow
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email, ip, userAgent string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email, ip, userAgent)
	}
	// Default behavior: success
	return nil
}

// ResetPassword completes the reset flow
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	// Default behavior: success
	return nil
}

// VerifyEmail confirms an address
func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
