package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Cheskazzzz/portal-master/domain"
)

// AppointmentRepositoryImpl implements domain.AppointmentRepository using GORM
type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

// DBAppointment represents the database model for Appointment
type DBAppointment struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	UserID      string `gorm:"type:uuid;index;not null"`
	Title       string `gorm:"size:256;not null"`
	Description string
	Date        time.Time `gorm:"column:appointment_date;index;not null"`
	Status      string    `gorm:"size:50;index;not null;default:pending"`
	Location    string    `gorm:"size:512"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBAppointment) TableName() string {
	return "portal_appointments"
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domain.AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

// Create implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) Create(ctx context.Context, appt *domain.Appointment) error {
	dbAppt := r.domainToDB(appt)
	if dbAppt.ID == "" {
		dbAppt.ID = uuid.NewString()
	}
	if dbAppt.Status == "" {
		dbAppt.Status = domain.AppointmentPending
	}
	if err := r.db.WithContext(ctx).Create(dbAppt).Error; err != nil {
		return err
	}
	appt.ID = dbAppt.ID
	appt.Status = dbAppt.Status
	appt.CreatedAt = dbAppt.CreatedAt
	return nil
}

// ListByUser implements domain.AppointmentRepository, soonest first
func (r *AppointmentRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	var dbAppts []DBAppointment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("appointment_date ASC").
		Find(&dbAppts).Error
	if err != nil {
		return nil, err
	}
	appts := make([]domain.Appointment, 0, len(dbAppts))
	for i := range dbAppts {
		appts = append(appts, *r.dbToDomain(&dbAppts[i]))
	}
	return appts, nil
}

// FindByID implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var dbAppt DBAppointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAppt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAppt), nil
}

// Delete implements domain.AppointmentRepository
func (r *AppointmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBAppointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepositoryImpl) domainToDB(appt *domain.Appointment) *DBAppointment {
	return &DBAppointment{
		ID:          appt.ID,
		UserID:      appt.UserID,
		Title:       appt.Title,
		Description: appt.Description,
		Date:        appt.Date,
		Status:      appt.Status,
		Location:    appt.Location,
		Notes:       appt.Notes,
		CreatedAt:   appt.CreatedAt,
		UpdatedAt:   appt.UpdatedAt,
	}
}

func (r *AppointmentRepositoryImpl) dbToDomain(dbAppt *DBAppointment) *domain.Appointment {
	return &domain.Appointment{
		ID:          dbAppt.ID,
		UserID:      dbAppt.UserID,
		Title:       dbAppt.Title,
		Description: dbAppt.Description,
		Date:        dbAppt.Date,
		Status:      dbAppt.Status,
		Location:    dbAppt.Location,
		Notes:       dbAppt.Notes,
		CreatedAt:   dbAppt.CreatedAt,
		UpdatedAt:   dbAppt.UpdatedAt,
	}
}
