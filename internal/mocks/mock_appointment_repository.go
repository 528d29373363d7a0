package mocks

import (
	"context"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockAppointmentRepository implements domain.AppointmentRepository interface for testing
type MockAppointmentRepository struct {
	CreateFunc     func(ctx context.Context, appt *domain.Appointment) error
	ListByUserFunc func(ctx context.Context, userID string) ([]domain.Appointment, error)
	FindByIDFunc   func(ctx context.Context, id string) (*domain.Appointment, error)
	DeleteFunc     func(ctx context.Context, id string) error
}

// NewMockAppointmentRepository creates a new MockAppointmentRepository with default behaviors
func NewMockAppointmentRepository() *MockAppointmentRepository {
	return &MockAppointmentRepository{}
}

// Create stores a new appointment
func (m *MockAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appt)
	}
	// Default behavior: success
	return nil
}

// ListByUser returns a user's appointments
func (m *MockAppointmentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty
	return nil, nil
}

// FindByID finds an appointment by ID
func (m *MockAppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAppointmentNotFound
}

// Delete removes an appointment
func (m *MockAppointmentRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AppointmentRepository = (*MockAppointmentRepository)(nil)
