package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Cheskazzzz/portal-master/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using GORM
type SessionRepositoryImpl struct {
	db *gorm.DB
}

// DBSession represents the database model for Session
type DBSession struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	Token     string    `gorm:"uniqueIndex;size:255;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	IPAddress string    `gorm:"size:45"` // IPv6 compatible
	UserAgent string
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (DBSession) TableName() string {
	return "portal_sessions"
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domain.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create implements domain.SessionRepository. Token uniqueness is
// enforced by the unique index; a collision surfaces as an error rather
// than a silent overwrite.
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	dbSession := &DBSession{
		ID:        session.ID,
		UserID:    session.UserID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
	}
	if dbSession.ID == "" {
		dbSession.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return err
	}
	session.ID = dbSession.ID
	session.CreatedAt = dbSession.CreatedAt
	return nil
}

// sessionUserRow is the flat scan target for the session-user join
type sessionUserRow struct {
	SessionID string
	UserID    string
	Token     string
	ExpiresAt time.Time
	Email     string
	Name      string
	RoleID    int
	IsActive  bool
}

// FindWithUser implements domain.SessionRepository: one join from the
// session row to its owning user
func (r *SessionRepositoryImpl) FindWithUser(ctx context.Context, token string) (*domain.SessionUser, error) {
	var row sessionUserRow
	err := r.db.WithContext(ctx).
		Table("portal_sessions").
		Select(`portal_sessions.id AS session_id, portal_sessions.user_id,
			portal_sessions.token, portal_sessions.expires_at,
			portal_users.email, portal_users.name, portal_users.role_id,
			portal_users.is_active`).
		Joins("JOIN portal_users ON portal_users.id = portal_sessions.user_id").
		Where("portal_sessions.token = ?", token).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	return &domain.SessionUser{
		Session: domain.Session{
			ID:        row.SessionID,
			UserID:    row.UserID,
			Token:     row.Token,
			ExpiresAt: row.ExpiresAt,
		},
		User: domain.User{
			ID:       row.UserID,
			Email:    row.Email,
			Name:     row.Name,
			RoleID:   row.RoleID,
			IsActive: row.IsActive,
		},
	}, nil
}

// DeleteByToken implements domain.SessionRepository; deleting an absent
// token is not an error
func (r *SessionRepositoryImpl) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&DBSession{}).Error
}

// DeleteByUser implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&DBSession{}).Error
}

// DeleteOthersByUser implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteOthersByUser(ctx context.Context, userID, keepToken string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND token <> ?", userID, keepToken).
		Delete(&DBSession{}).Error
}

// DeleteExpired implements domain.SessionRepository: rows whose expiry
// is at or before now are removed
func (r *SessionRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&DBSession{})
	return result.RowsAffected, result.Error
}
