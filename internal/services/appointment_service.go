package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cheskazzzz/portal-master/domain"
)

// AppointmentServiceImpl implements domain.AppointmentService
type AppointmentServiceImpl struct {
	apptRepo domain.AppointmentRepository
	audit    domain.AuditService
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(apptRepo domain.AppointmentRepository, audit domain.AuditService) domain.AppointmentService {
	return &AppointmentServiceImpl{apptRepo: apptRepo, audit: audit}
}

// ListForUser implements domain.AppointmentService
func (s *AppointmentServiceImpl) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return s.apptRepo.ListByUser(ctx, userID)
}

// Create implements domain.AppointmentService
func (s *AppointmentServiceImpl) Create(ctx context.Context, input domain.CreateAppointmentInput) (*domain.Appointment, error) {
	appt := &domain.Appointment{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Status:      domain.AppointmentPending,
		Location:    input.Location,
		Notes:       input.Notes,
	}
	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    input.UserID,
		Action:     domain.ActionDataModify,
		Resource:   "appointment",
		ResourceID: appt.ID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		Details:    map[string]any{"operation": "create", "date": appt.Date},
	})

	return appt, nil
}

// Delete implements domain.AppointmentService. A row owned by somebody
// else is reported as not found, not as forbidden.
func (s *AppointmentServiceImpl) Delete(ctx context.Context, userID, appointmentID, ip, userAgent string) error {
	appt, err := s.apptRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.UserID != userID {
		return domain.ErrAppointmentNotFound
	}

	if err := s.apptRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	s.audit.Record(ctx, domain.AuditEvent{
		ActorID:    userID,
		Action:     domain.ActionDataModify,
		Resource:   "appointment",
		ResourceID: appointmentID,
		IPAddress:  ip,
		UserAgent:  userAgent,
		Details:    map[string]any{"operation": "delete"},
	})

	return nil
}
