package mocks

import (
	"context"
	"time"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id string) (*domain.User, error)
	ListFunc           func(ctx context.Context) ([]domain.User, error)
	UpdateFunc         func(ctx context.Context, user *domain.User) error
	UpdatePasswordFunc func(ctx context.Context, userID, passwordHash string) error
	MarkVerifiedFunc   func(ctx context.Context, userID string) error
	RecordLoginFunc    func(ctx context.Context, userID string, at time.Time) error
	DeleteFunc         func(ctx context.Context, userID string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// List returns all users
func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty
	return nil, nil
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// UpdatePassword replaces the stored password hash
func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, passwordHash)
	}
	// Default behavior: success
	return nil
}

// MarkVerified sets the email verified flag
func (m *MockUserRepository) MarkVerified(ctx context.Context, userID string) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// RecordLogin stamps the last login time
func (m *MockUserRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	if m.RecordLoginFunc != nil {
		return m.RecordLoginFunc(ctx, userID, at)
	}
	// Default behavior: success
	return nil
}

// Delete removes a user
func (m *MockUserRepository) Delete(ctx context.Context, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
