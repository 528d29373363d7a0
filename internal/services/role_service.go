package services

import (
	"context"
	"fmt"

	"github.com/Cheskazzzz/portal-master/domain"
)

// defaultRoles must exist before any registration or login can resolve a
// role. IDs are stable so existing user rows keep meaning across restarts.
var defaultRoles = []domain.Role{
	{ID: 1, Name: domain.RoleAdmin, Description: "Administrator with full access"},
	{ID: 2, Name: domain.RoleUser, Description: "Regular user"},
	{ID: 3, Name: domain.RoleGuest, Description: "Guest user with limited access"},
}

// RoleDirectoryImpl implements domain.RoleDirectory
type RoleDirectoryImpl struct {
	roleRepo domain.RoleRepository
	userRepo domain.UserRepository
}

// NewRoleDirectory creates a new role directory
func NewRoleDirectory(roleRepo domain.RoleRepository, userRepo domain.UserRepository) domain.RoleDirectory {
	return &RoleDirectoryImpl{roleRepo: roleRepo, userRepo: userRepo}
}

// EnsureDefaultRoles implements domain.RoleDirectory. Idempotent: the
// repository treats a duplicate name as a no-op, so concurrent callers
// cannot produce a second row per role.
func (s *RoleDirectoryImpl) EnsureDefaultRoles(ctx context.Context) error {
	if err := s.roleRepo.EnsureAll(ctx, defaultRoles); err != nil {
		return fmt.Errorf("failed to seed default roles: %w", err)
	}
	return nil
}

// RoleName implements domain.RoleDirectory
func (s *RoleDirectoryImpl) RoleName(ctx context.Context, roleID int) (string, error) {
	role, err := s.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		return "", err
	}
	return role.Name, nil
}

// RoleID implements domain.RoleDirectory
func (s *RoleDirectoryImpl) RoleID(ctx context.Context, name string) (int, error) {
	role, err := s.roleRepo.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return role.ID, nil
}

// HasAnyRole implements domain.RoleDirectory
func (s *RoleDirectoryImpl) HasAnyRole(ctx context.Context, userID string, names []string) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return false, nil
		}
		return false, err
	}

	roleName, err := s.RoleName(ctx, user.RoleID)
	if err != nil {
		if err == domain.ErrRoleNotFound {
			return false, nil
		}
		return false, err
	}

	for _, name := range names {
		if name == roleName {
			return true, nil
		}
	}
	return false, nil
}
