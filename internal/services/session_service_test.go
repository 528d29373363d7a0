package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/mocks"
)

func TestSessionServiceImpl_Issue(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepository()
	var created *domain.Session
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		created = session
		return nil
	}

	svc := NewSessionService(sessionRepo, 7*24*time.Hour)

	before := time.Now()
	token, err := svc.Issue(context.Background(), "u-1", "10.0.0.1", "agent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if created == nil {
		t.Fatal("expected a session to be persisted")
	}
	if created.Token != token {
		t.Error("persisted token differs from returned token")
	}
	if created.UserID != "u-1" || created.IPAddress != "10.0.0.1" || created.UserAgent != "agent" {
		t.Errorf("unexpected session metadata: %+v", created)
	}

	wantExpiry := before.Add(7 * 24 * time.Hour)
	if created.ExpiresAt.Before(wantExpiry) || created.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiry %v not near %v", created.ExpiresAt, wantExpiry)
	}

	// Two issues never share a token.
	token2, err := svc.Issue(context.Background(), "u-1", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token2 == token {
		t.Error("expected distinct tokens")
	}
}

func TestSessionServiceImpl_Validate(t *testing.T) {
	owner := domain.User{ID: "u-1", Name: "Maria Silva", Email: "maria@example.com", RoleID: 2, IsActive: true}

	tests := []struct {
		name          string
		token         string
		setupMocks    func(*mocks.MockSessionRepository)
		expectedError error
		expectPurge   bool
	}{
		{
			name:  "valid session",
			token: "tok-1",
			setupMocks: func(repo *mocks.MockSessionRepository) {
				repo.FindWithUserFunc = func(ctx context.Context, token string) (*domain.SessionUser, error) {
					return &domain.SessionUser{
						Session: domain.Session{Token: token, UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)},
						User:    owner,
					}, nil
				}
			},
		},
		{
			name:          "empty token",
			token:         "",
			setupMocks:    func(repo *mocks.MockSessionRepository) {},
			expectedError: domain.ErrSessionNotFound,
		},
		{
			name:          "unknown token",
			token:         "gone",
			setupMocks:    func(repo *mocks.MockSessionRepository) {},
			expectedError: domain.ErrSessionNotFound,
		},
		{
			name:  "expired session is purged lazily",
			token: "tok-old",
			setupMocks: func(repo *mocks.MockSessionRepository) {
				repo.FindWithUserFunc = func(ctx context.Context, token string) (*domain.SessionUser, error) {
					return &domain.SessionUser{
						Session: domain.Session{Token: token, UserID: "u-1", ExpiresAt: time.Now().Add(-time.Minute)},
						User:    owner,
					}, nil
				}
			},
			expectedError: domain.ErrSessionExpired,
			expectPurge:   true,
		},
		{
			name:  "inactive owner",
			token: "tok-1",
			setupMocks: func(repo *mocks.MockSessionRepository) {
				repo.FindWithUserFunc = func(ctx context.Context, token string) (*domain.SessionUser, error) {
					inactive := owner
					inactive.IsActive = false
					return &domain.SessionUser{
						Session: domain.Session{Token: token, UserID: "u-1", ExpiresAt: time.Now().Add(time.Hour)},
						User:    inactive,
					}, nil
				}
			},
			expectedError: domain.ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockSessionRepository()
			var purged string
			repo.DeleteByTokenFunc = func(ctx context.Context, token string) error {
				purged = token
				return nil
			}
			tt.setupMocks(repo)

			svc := NewSessionService(repo, time.Hour)
			info, err := svc.Validate(context.Background(), tt.token)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if info != nil {
					t.Error("expected nil info on failure")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if info.UserID != "u-1" || info.RoleID != 2 || info.Email != "maria@example.com" {
					t.Errorf("unexpected info: %+v", info)
				}
				if info.Token != tt.token {
					t.Errorf("expected token %q, got %q", tt.token, info.Token)
				}
			}

			if tt.expectPurge && purged != tt.token {
				t.Errorf("expected %q purged, got %q", tt.token, purged)
			}
			if !tt.expectPurge && purged != "" {
				t.Errorf("unexpected purge of %q", purged)
			}
		})
	}
}
