package mocks

import (
	"context"
	"sync"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockAuditService implements domain.AuditService interface for testing.
// Recorded events are captured for assertions.
type MockAuditService struct {
	QueryFunc func(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error)

	mu     sync.Mutex
	events []domain.AuditEvent
}

// NewMockAuditService creates a new MockAuditService
func NewMockAuditService() *MockAuditService {
	return &MockAuditService{}
}

// Record captures the event
func (m *MockAuditService) Record(ctx context.Context, event domain.AuditEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

// Query returns audit records
func (m *MockAuditService) Query(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditRecord, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, filter)
	}
	// Default behavior: empty
	return nil, nil
}

// Events returns a snapshot of everything recorded so far
func (m *MockAuditService) Events() []domain.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.AuditEvent, len(m.events))
	copy(out, m.events)
	return out
}

// EventsByAction returns recorded events with the given action
func (m *MockAuditService) EventsByAction(action domain.AuditAction) []domain.AuditEvent {
	var out []domain.AuditEvent
	for _, e := range m.Events() {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

// Compile-time interface compliance verification
var _ domain.AuditService = (*MockAuditService)(nil)
