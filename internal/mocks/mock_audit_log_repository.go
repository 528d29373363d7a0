package mocks

import (
	"context"
	"sync"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockAuditLogRepository implements domain.AuditLogRepository interface for testing
type MockAuditLogRepository struct {
	CreateFunc func(ctx context.Context, entry *domain.AuditEntry) error
	FindFunc   func(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)

	mu      sync.Mutex
	entries []domain.AuditEntry
}

// NewMockAuditLogRepository creates a new MockAuditLogRepository
func NewMockAuditLogRepository() *MockAuditLogRepository {
	return &MockAuditLogRepository{}
}

// Create persists an entry
func (m *MockAuditLogRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

// Find queries entries
func (m *MockAuditLogRepository) Find(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.AuditEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

// Entries returns a snapshot of everything persisted so far
func (m *MockAuditLogRepository) Entries() []domain.AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.AuditEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Compile-time interface compliance verification
var _ domain.AuditLogRepository = (*MockAuditLogRepository)(nil)
