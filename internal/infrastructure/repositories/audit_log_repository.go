package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Cheskazzzz/portal-master/domain"
)

// AuditLogRepositoryImpl implements domain.AuditLogRepository using GORM
type AuditLogRepositoryImpl struct {
	db *gorm.DB
}

// DBAuditLog represents the database model for AuditEntry. Rows are
// append-only: there is no update path.
type DBAuditLog struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	UserID        *string `gorm:"type:uuid;index"`
	Action        string  `gorm:"index;size:100;not null"`
	Resource      string  `gorm:"size:100"`
	ResourceID    string  `gorm:"size:100"`
	IPAddress     string  `gorm:"size:45"`
	UserAgent     string
	Details       string
	EncryptedData string
	CreatedAt     time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBAuditLog) TableName() string {
	return "portal_audit_logs"
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domain.AuditLogRepository {
	return &AuditLogRepositoryImpl{db: db}
}

// Create implements domain.AuditLogRepository
func (r *AuditLogRepositoryImpl) Create(ctx context.Context, entry *domain.AuditEntry) error {
	dbEntry := &DBAuditLog{
		ID:            entry.ID,
		UserID:        entry.UserID,
		Action:        string(entry.Action),
		Resource:      entry.Resource,
		ResourceID:    entry.ResourceID,
		IPAddress:     entry.IPAddress,
		UserAgent:     entry.UserAgent,
		Details:       entry.Details,
		EncryptedData: entry.EncryptedData,
	}
	if dbEntry.ID == "" {
		dbEntry.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbEntry).Error; err != nil {
		return err
	}
	entry.ID = dbEntry.ID
	entry.CreatedAt = dbEntry.CreatedAt
	return nil
}

// Find implements domain.AuditLogRepository: filtered, newest first
func (r *AuditLogRepositoryImpl) Find(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := r.db.WithContext(ctx).Model(&DBAuditLog{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", string(filter.Action))
	}
	if filter.Resource != "" {
		query = query.Where("resource = ?", filter.Resource)
	}

	var dbEntries []DBAuditLog
	err := query.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&dbEntries).Error
	if err != nil {
		return nil, err
	}

	entries := make([]domain.AuditEntry, 0, len(dbEntries))
	for i := range dbEntries {
		e := &dbEntries[i]
		entries = append(entries, domain.AuditEntry{
			ID:            e.ID,
			UserID:        e.UserID,
			Action:        domain.AuditAction(e.Action),
			Resource:      e.Resource,
			ResourceID:    e.ResourceID,
			IPAddress:     e.IPAddress,
			UserAgent:     e.UserAgent,
			Details:       e.Details,
			EncryptedData: e.EncryptedData,
			CreatedAt:     e.CreatedAt,
		})
	}
	return entries, nil
}
