package mocks

import (
	"context"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockRoleDirectory implements domain.RoleDirectory interface for testing
type MockRoleDirectory struct {
	EnsureDefaultRolesFunc func(ctx context.Context) error
	RoleNameFunc           func(ctx context.Context, roleID int) (string, error)
	RoleIDFunc             func(ctx context.Context, name string) (int, error)
	HasAnyRoleFunc         func(ctx context.Context, userID string, names []string) (bool, error)
}

// NewMockRoleDirectory creates a new MockRoleDirectory with default behaviors.
// The defaults answer from the standard ADMIN/USER/GUEST set.
func NewMockRoleDirectory() *MockRoleDirectory {
	return &MockRoleDirectory{}
}

// EnsureDefaultRoles seeds the default role set
func (m *MockRoleDirectory) EnsureDefaultRoles(ctx context.Context) error {
	if m.EnsureDefaultRolesFunc != nil {
		return m.EnsureDefaultRolesFunc(ctx)
	}
	// Default behavior: success
	return nil
}

// RoleName resolves a role ID to its name
func (m *MockRoleDirectory) RoleName(ctx context.Context, roleID int) (string, error) {
	if m.RoleNameFunc != nil {
		return m.RoleNameFunc(ctx, roleID)
	}
	switch roleID {
	case 1:
		return domain.RoleAdmin, nil
	case 2:
		return domain.RoleUser, nil
	case 3:
		return domain.RoleGuest, nil
	}
	return "", domain.ErrRoleNotFound
}

// RoleID resolves a role name to its ID
func (m *MockRoleDirectory) RoleID(ctx context.Context, name string) (int, error) {
	if m.RoleIDFunc != nil {
		return m.RoleIDFunc(ctx, name)
	}
	switch name {
	case domain.RoleAdmin:
		return 1, nil
	case domain.RoleUser:
		return 2, nil
	case domain.RoleGuest:
		return 3, nil
	}
	return 0, domain.ErrRoleNotFound
}

// HasAnyRole reports whether the user holds one of the named roles
func (m *MockRoleDirectory) HasAnyRole(ctx context.Context, userID string, names []string) (bool, error) {
	if m.HasAnyRoleFunc != nil {
		return m.HasAnyRoleFunc(ctx, userID, names)
	}
	// Default behavior: denied
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.RoleDirectory = (*MockRoleDirectory)(nil)
