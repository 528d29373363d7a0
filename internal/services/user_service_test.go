package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/mocks"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestUserServiceImpl_CreateUser(t *testing.T) {
	t.Run("admin-created accounts are pre-verified", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		var created *domain.User
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			user.ID = "u-new"
			created = user
			return nil
		}
		audit := mocks.NewMockAuditService()

		svc := NewUserService(userRepo, mocks.NewMockRoleDirectory(),
			mocks.NewMockPasswordService(), mocks.NewMockSessionService(), audit)

		user, err := svc.CreateUser(context.Background(), domain.AdminCreateUserInput{
			ActorID:  "admin-1",
			Name:     "Joao Santos",
			Email:    "joao@example.com",
			Password: "strongpass1A",
			RoleID:   2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !user.EmailVerified {
			t.Error("expected admin-created account to be pre-verified")
		}
		if created.PasswordHash != "hashed_strongpass1A" {
			t.Errorf("unexpected hash %q", created.PasswordHash)
		}
		events := audit.EventsByAction(domain.ActionCreateUser)
		if len(events) != 1 || events[0].ActorID != "admin-1" {
			t.Errorf("expected CREATE_USER by admin-1, got %+v", events)
		}
	})

	t.Run("unknown role is rejected before any write", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			t.Error("create must not be reached")
			return nil
		}

		svc := NewUserService(userRepo, mocks.NewMockRoleDirectory(),
			mocks.NewMockPasswordService(), mocks.NewMockSessionService(), mocks.NewMockAuditService())

		_, err := svc.CreateUser(context.Background(), domain.AdminCreateUserInput{
			Name: "Joao Santos", Email: "joao@example.com", Password: "strongpass1A", RoleID: 99,
		})
		if !errors.Is(err, domain.ErrRoleNotFound) {
			t.Fatalf("expected ErrRoleNotFound, got %v", err)
		}
	})
}

func TestUserServiceImpl_UpdateUser(t *testing.T) {
	existing := func() *domain.User {
		return &domain.User{ID: "u-1", Name: "Maria Silva", Email: "maria@example.com", RoleID: 2, IsActive: true}
	}

	tests := []struct {
		name        string
		input       domain.AdminUpdateUserInput
		wantAction  domain.AuditAction
		wantRevoke  bool
		wantNoWrite bool
	}{
		{
			name:       "name change audits UPDATE_USER",
			input:      domain.AdminUpdateUserInput{ActorID: "admin-1", UserID: "u-1", Name: strPtr("Maria Souza")},
			wantAction: domain.ActionUpdateUser,
		},
		{
			name:       "role change audits CHANGE_ROLE",
			input:      domain.AdminUpdateUserInput{ActorID: "admin-1", UserID: "u-1", RoleID: intPtr(1)},
			wantAction: domain.ActionChangeRole,
		},
		{
			name:       "deactivation revokes all sessions",
			input:      domain.AdminUpdateUserInput{ActorID: "admin-1", UserID: "u-1", IsActive: boolPtr(false)},
			wantAction: domain.ActionUpdateUser,
			wantRevoke: true,
		},
		{
			name:        "no-op update writes nothing",
			input:       domain.AdminUpdateUserInput{ActorID: "admin-1", UserID: "u-1", Name: strPtr("Maria Silva")},
			wantNoWrite: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
				return existing(), nil
			}
			updated := false
			userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
				updated = true
				return nil
			}
			sessionSvc := mocks.NewMockSessionService()
			revoked := false
			sessionSvc.RevokeAllFunc = func(ctx context.Context, userID string) error {
				revoked = true
				return nil
			}
			audit := mocks.NewMockAuditService()

			svc := NewUserService(userRepo, mocks.NewMockRoleDirectory(),
				mocks.NewMockPasswordService(), sessionSvc, audit)

			user, err := svc.UpdateUser(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil {
				t.Fatal("expected a user back")
			}

			if tt.wantNoWrite {
				if updated {
					t.Error("expected no write for a no-op update")
				}
				if len(audit.Events()) != 0 {
					t.Error("expected no audit for a no-op update")
				}
				return
			}

			if !updated {
				t.Error("expected the user to be persisted")
			}
			if revoked != tt.wantRevoke {
				t.Errorf("revoke all = %v, want %v", revoked, tt.wantRevoke)
			}
			events := audit.EventsByAction(tt.wantAction)
			if len(events) != 1 {
				t.Fatalf("expected 1 %s event, got %d", tt.wantAction, len(events))
			}
		})
	}

	t.Run("unknown target role is rejected", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
			return existing(), nil
		}

		svc := NewUserService(userRepo, mocks.NewMockRoleDirectory(),
			mocks.NewMockPasswordService(), mocks.NewMockSessionService(), mocks.NewMockAuditService())

		_, err := svc.UpdateUser(context.Background(), domain.AdminUpdateUserInput{
			UserID: "u-1", RoleID: intPtr(42),
		})
		if !errors.Is(err, domain.ErrRoleNotFound) {
			t.Fatalf("expected ErrRoleNotFound, got %v", err)
		}
	})
}

func TestUserServiceImpl_DeleteUser(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
		return &domain.User{ID: id, Email: "maria@example.com"}, nil
	}
	var deleted string
	userRepo.DeleteFunc = func(ctx context.Context, userID string) error {
		deleted = userID
		return nil
	}
	sessionSvc := mocks.NewMockSessionService()
	revoked := false
	sessionSvc.RevokeAllFunc = func(ctx context.Context, userID string) error {
		revoked = true
		return nil
	}
	audit := mocks.NewMockAuditService()

	svc := NewUserService(userRepo, mocks.NewMockRoleDirectory(),
		mocks.NewMockPasswordService(), sessionSvc, audit)

	if err := svc.DeleteUser(context.Background(), "admin-1", "u-1", "10.0.0.1", "agent"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "u-1" {
		t.Errorf("expected u-1 deleted, got %q", deleted)
	}
	if !revoked {
		t.Error("expected sessions revoked before deletion")
	}
	if len(audit.EventsByAction(domain.ActionDeleteUser)) != 1 {
		t.Error("expected one DELETE_USER event")
	}
}
