package mocks

import (
	"context"

	"github.com/Cheskazzzz/portal-master/domain"
)

// MockAppointmentService implements domain.AppointmentService interface for testing
type MockAppointmentService struct {
	ListForUserFunc func(ctx context.Context, userID string) ([]domain.Appointment, error)
	CreateFunc      func(ctx context.Context, input domain.CreateAppointmentInput) (*domain.Appointment, error)
	DeleteFunc      func(ctx context.Context, userID, appointmentID, ip, userAgent string) error
}

// NewMockAppointmentService creates a new MockAppointmentService with default behaviors
func NewMockAppointmentService() *MockAppointmentService {
	return &MockAppointmentService{}
}

// ListForUser returns a user's appointments
func (m *MockAppointmentService) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID)
	}
	// Default behavior: empty
	return nil, nil
}

// Create books an appointment
func (m *MockAppointmentService) Create(ctx context.Context, input domain.CreateAppointmentInput) (*domain.Appointment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return &domain.Appointment{
		ID:     "a-1",
		UserID: input.UserID,
		Title:  input.Title,
		Date:   input.Date,
		Status: domain.AppointmentPending,
	}, nil
}

// Delete cancels an appointment
func (m *MockAppointmentService) Delete(ctx context.Context, userID, appointmentID, ip, userAgent string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, appointmentID, ip, userAgent)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AppointmentService = (*MockAppointmentService)(nil)
