package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Cheskazzzz/portal-master/domain"
)

// AuditServiceImpl implements domain.AuditService
type AuditServiceImpl struct {
	auditRepo domain.AuditLogRepository
	encryptor domain.Encryptor
	logger    *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo domain.AuditLogRepository, encryptor domain.Encryptor, logger *zap.Logger) domain.AuditService {
	return &AuditServiceImpl{
		auditRepo: auditRepo,
		encryptor: encryptor,
		logger:    logger,
	}
}

// Record implements domain.AuditService. The write happens before Record
// returns so the entry exists by the time the response goes out, but a
// failure is reported to the operational log only - it must never abort
// the operation being audited.
func (s *AuditServiceImpl) Record(ctx context.Context, event domain.AuditEvent) {
	if !event.Action.Valid() {
		s.logger.Warn("audit event with unknown action dropped",
			zap.String("action", string(event.Action)))
		return
	}

	entry := &domain.AuditEntry{
		Action:     event.Action,
		Resource:   event.Resource,
		ResourceID: event.ResourceID,
		IPAddress:  event.IPAddress,
		UserAgent:  event.UserAgent,
	}
	if event.ActorID != "" {
		actor := event.ActorID
		entry.UserID = &actor
	}

	if event.Details != nil {
		data, err := json.Marshal(event.Details)
		if err != nil {
			s.logger.Error("failed to serialize audit details",
				zap.String("action", string(event.Action)), zap.Error(err))
		} else {
			entry.Details = string(data)
		}
	}

	if event.Sensitive != "" {
		blob, err := s.encryptor.Encrypt(event.Sensitive)
		if err != nil {
			// Do not write the sensitive payload in the clear.
			s.logger.Error("failed to encrypt audit payload",
				zap.String("action", string(event.Action)), zap.Error(err))
		} else {
			entry.EncryptedData = blob
		}
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to create audit log",
			zap.String("action", string(event.Action)), zap.Error(err))
	}
}

// Query implements domain.AuditService. Entries carrying an encrypted
// payload are opportunistically decrypted for display; Decrypted reports
// whether that succeeded.
func (s *AuditServiceImpl) Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error) {
	entries, err := s.auditRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	records := make([]domain.AuditRecord, 0, len(entries))
	for _, entry := range entries {
		record := domain.AuditRecord{AuditEntry: entry}
		if entry.EncryptedData != "" {
			plaintext, err := s.encryptor.Decrypt(entry.EncryptedData)
			if err == nil {
				record.Sensitive = plaintext
				record.Decrypted = true
			}
		}
		records = append(records, record)
	}
	return records, nil
}
