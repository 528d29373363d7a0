package mocks

import (
	"context"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockRoleRepository implements domain.RoleRepository interface for testing
type MockRoleRepository struct {
	EnsureAllFunc  func(ctx context.Context, roles []domain.Role) error
	FindByIDFunc   func(ctx context.Context, id int) (*domain.Role, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Role, error)
}

// NewMockRoleRepository creates a new MockRoleRepository with default behaviors
func NewMockRoleRepository() *MockRoleRepository {
	return &MockRoleRepository{}
}

// EnsureAll inserts missing roles
func (m *MockRoleRepository) EnsureAll(ctx context.Context, roles []domain.Role) error {
	if m.EnsureAllFunc != nil {
		return m.EnsureAllFunc(ctx, roles)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a role by ID
func (m *MockRoleRepository) FindByID(ctx context.Context, id int) (*domain.Role, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrRoleNotFound
}

// FindByName finds a role by name
func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	// Default behavior: not found
	return nil, domain.ErrRoleNotFound
}

// Compile-time interface compliance verification
var _ domain.RoleRepository = (*MockRoleRepository)(nil)
