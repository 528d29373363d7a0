package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/mocks"
)

func TestRoleDirectoryImpl_EnsureDefaultRoles(t *testing.T) {
	roleRepo := mocks.NewMockRoleRepository()
	var seeded []domain.Role
	roleRepo.EnsureAllFunc = func(ctx context.Context, roles []domain.Role) error {
		seeded = roles
		return nil
	}

	dir := NewRoleDirectory(roleRepo, mocks.NewMockUserRepository())
	if err := dir.EnsureDefaultRoles(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seeded) != 3 {
		t.Fatalf("expected 3 default roles, got %d", len(seeded))
	}
	want := map[int]string{1: domain.RoleAdmin, 2: domain.RoleUser, 3: domain.RoleGuest}
	for _, r := range seeded {
		if want[r.ID] != r.Name {
			t.Errorf("unexpected role %d=%s", r.ID, r.Name)
		}
	}
}

func TestRoleDirectoryImpl_HasAnyRole(t *testing.T) {
	roleRepo := mocks.NewMockRoleRepository()
	roleRepo.FindByIDFunc = func(ctx context.Context, id int) (*domain.Role, error) {
		if id == 1 {
			return &domain.Role{ID: 1, Name: domain.RoleAdmin}, nil
		}
		return nil, domain.ErrRoleNotFound
	}

	tests := []struct {
		name       string
		userID     string
		names      []string
		setupUsers func(*mocks.MockUserRepository)
		want       bool
		wantErr    bool
	}{
		{
			name:   "user holds the role",
			userID: "u-1",
			names:  []string{domain.RoleAdmin},
			setupUsers: func(repo *mocks.MockUserRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return &domain.User{ID: id, RoleID: 1}, nil
				}
			},
			want: true,
		},
		{
			name:   "user holds a different role",
			userID: "u-1",
			names:  []string{domain.RoleUser, domain.RoleGuest},
			setupUsers: func(repo *mocks.MockUserRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return &domain.User{ID: id, RoleID: 1}, nil
				}
			},
			want: false,
		},
		{
			name:       "unknown user is denied, not an error",
			userID:     "ghost",
			names:      []string{domain.RoleAdmin},
			setupUsers: func(repo *mocks.MockUserRepository) {},
			want:       false,
		},
		{
			name:   "dangling role ID is denied, not an error",
			userID: "u-1",
			names:  []string{domain.RoleAdmin},
			setupUsers: func(repo *mocks.MockUserRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return &domain.User{ID: id, RoleID: 99}, nil
				}
			},
			want: false,
		},
		{
			name:   "repository failure surfaces",
			userID: "u-1",
			names:  []string{domain.RoleAdmin},
			setupUsers: func(repo *mocks.MockUserRepository) {
				repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.User, error) {
					return nil, errors.New("db down")
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupUsers(userRepo)

			dir := NewRoleDirectory(roleRepo, userRepo)
			got, err := dir.HasAnyRole(context.Background(), tt.userID, tt.names)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
