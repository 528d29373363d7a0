package services

import (
	"context"
	"fmt"

	"github.com/Cheskazzzz/portal-master/domain"
)

// UserServiceImpl implements domain.UserService (admin user management)
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	roleDir     domain.RoleDirectory
	passwordSvc domain.PasswordService
	sessionSvc  domain.SessionService
	audit       domain.AuditService
}

// NewUserService creates a new admin user service
func NewUserService(
	userRepo domain.UserRepository,
	roleDir domain.RoleDirectory,
	passwordSvc domain.PasswordService,
	sessionSvc domain.SessionService,
	audit domain.AuditService,
) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		roleDir:     roleDir,
		passwordSvc: passwordSvc,
		sessionSvc:  sessionSvc,
		audit:       audit,
	}
}

// ListUsers implements domain.UserService. Password hashes stay in the
// struct for internal use; handlers must not serialize them.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// CreateUser implements domain.UserService. Admin-created accounts are
// pre-verified and get the chosen role.
func (s *UserServiceImpl) CreateUser(ctx context.Context, input domain.AdminCreateUserInput) (*domain.User, error) {
	// Reject unknown role IDs up front; the FK alone would give an
	// opaque storage error.
	if _, err := s.roleDir.RoleName(ctx, input.RoleID); err != nil {
		return nil, domain.ErrRoleNotFound
	}

	passwordHash, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  passwordHash,
		RoleID:        input.RoleID,
		EmailVerified: true,
		IsActive:      true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    input.ActorID,
		Action:     domain.ActionCreateUser,
		Resource:   "user",
		ResourceID: user.ID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		Details:    map[string]any{"email": user.Email, "roleId": user.RoleID, "createdBy": "admin"},
	})

	return user, nil
}

// UpdateUser implements domain.UserService. A role change is audited as
// CHANGE_ROLE, other mutations as UPDATE_USER.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, input domain.AdminUpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	roleChanged := false
	details := map[string]any{}

	if input.Name != nil && *input.Name != user.Name {
		details["name"] = *input.Name
		user.Name = *input.Name
	}
	if input.RoleID != nil && *input.RoleID != user.RoleID {
		if _, err := s.roleDir.RoleName(ctx, *input.RoleID); err != nil {
			return nil, domain.ErrRoleNotFound
		}
		details["fromRoleId"] = user.RoleID
		details["toRoleId"] = *input.RoleID
		user.RoleID = *input.RoleID
		roleChanged = true
	}
	if input.IsActive != nil && *input.IsActive != user.IsActive {
		details["isActive"] = *input.IsActive
		user.IsActive = *input.IsActive
	}

	if len(details) == 0 {
		return user, nil
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	// Deactivation must bite immediately, not at next expiry.
	if input.IsActive != nil && !*input.IsActive {
		_ = s.sessionSvc.RevokeAll(ctx, user.ID)
	}

	action := domain.ActionUpdateUser
	if roleChanged {
		action = domain.ActionChangeRole
	}
	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    input.ActorID,
		Action:     action,
		Resource:   "user",
		ResourceID: user.ID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		Details:    details,
	})

	return user, nil
}

// DeleteUser implements domain.UserService
func (s *UserServiceImpl) DeleteUser(ctx context.Context, actorID, userID, ip, userAgent string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	_ = s.sessionSvc.RevokeAll(ctx, userID)

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    actorID,
		Action:     domain.ActionDeleteUser,
		Resource:   "user",
		ResourceID: userID,
		IPAddress:  ip,
		UserAgent:  userAgent,
		Details:    map[string]any{"email": user.Email},
	})

	return nil
}
