package mocks

import (
	"context"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockUserService implements domain.UserService interface for testing
type MockUserService struct {
	ListUsersFunc  func(ctx context.Context) ([]domain.User, error)
	CreateUserFunc func(ctx context.Context, input domain.AdminCreateUserInput) (*domain.User, error)
	UpdateUserFunc func(ctx context.Context, input domain.AdminUpdateUserInput) (*domain.User, error)
	DeleteUserFunc func(ctx context.Context, actorID, userID, ip, userAgent string) error
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// ListUsers returns all accounts
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// CreateUser creates an account
func (m *MockUserService) CreateUser(ctx context.Context, input domain.AdminCreateUserInput) (*domain.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, input)
	}
	return &domain.User{ID: "u-new", Name: input.Name, Email: input.Email, RoleID: input.RoleID, EmailVerified: true, IsActive: true}, nil
}

// UpdateUser patches an account
func (m *MockUserService) UpdateUser(ctx context.Context, input domain.AdminUpdateUserInput) (*domain.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, input)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// DeleteUser removes an account
func (m *MockUserService) DeleteUser(ctx context.Context, actorID, userID, ip, userAgent string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, actorID, userID, ip, userAgent)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
