package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Cheskazzzz/portal-master/domain"
	"github.com/Cheskazzzz/portal-master/internal/infrastructure/auth"
)

// SessionServiceImpl implements domain.SessionService over the durable
// session store
type SessionServiceImpl struct {
	sessionRepo domain.SessionRepository
	ttl         time.Duration
}

// NewSessionService creates a new session service with a fixed TTL
func NewSessionService(sessionRepo domain.SessionRepository, ttl time.Duration) domain.SessionService {
	return &SessionServiceImpl{sessionRepo: sessionRepo, ttl: ttl}
}

// Issue implements domain.SessionService: a fresh 256-bit token persisted
// with expiry now + TTL
func (s *SessionServiceImpl) Issue(ctx context.Context, userID, ip, userAgent string) (string, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &domain.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

// Validate implements domain.SessionService. A session is valid iff the
// token exists, the expiry is in the future, and the owning user is
// active. An expired row is purged lazily on the miss.
func (s *SessionServiceImpl) Validate(ctx context.Context, token string) (*domain.SessionInfo, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	joined, err := s.sessionRepo.FindWithUser(ctx, token)
	if err != nil {
		return nil, err
	}

	if joined.Session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteByToken(ctx, token)
		return nil, domain.ErrSessionExpired
	}

	// An inactive owner invalidates every live session immediately,
	// without the session rows changing.
	if !joined.User.IsActive {
		return nil, domain.ErrUserInactive
	}

	return &domain.SessionInfo{
		UserID: joined.User.ID,
		RoleID: joined.User.RoleID,
		Email:  joined.User.Email,
		Name:   joined.User.Name,
		Token:  token,
	}, nil
}

// Revoke implements domain.SessionService; revoking an already-gone
// token is not an error
func (s *SessionServiceImpl) Revoke(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}

// RevokeAll implements domain.SessionService
func (s *SessionServiceImpl) RevokeAll(ctx context.Context, userID string) error {
	return s.sessionRepo.DeleteByUser(ctx, userID)
}

// RevokeOthers implements domain.SessionService
func (s *SessionServiceImpl) RevokeOthers(ctx context.Context, userID, keepToken string) error {
	return s.sessionRepo.DeleteOthersByUser(ctx, userID, keepToken)
}
