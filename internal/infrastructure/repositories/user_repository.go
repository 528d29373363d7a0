package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Cheskazzzz/portal-master/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	Name          string `gorm:"size:256;not null"`
	Email         string `gorm:"uniqueIndex;size:320;not null"`
	PasswordHash  string `gorm:"not null"`
	RoleID        int    `gorm:"index;not null"`
	EmailVerified bool   `gorm:"not null;default:false"`
	IsActive      bool   `gorm:"index;not null;default:true"`
	LastLoginAt   *time.Time
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "portal_users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A duplicate email surfaces as
// domain.ErrEmailTaken; the unique index is the concurrency mechanism.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if dbUser.ID == "" {
		dbUser.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	return nil
}

// FindByEmail implements domain.UserRepository; the lookup is
// case-insensitive because email uniqueness is case-insensitive
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// List implements domain.UserRepository, oldest accounts first
func (r *UserRepositoryImpl) List(ctx context.Context) ([]domain.User, error) {
	var dbUsers []DBUser
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&dbUsers).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *r.dbToDomain(&dbUsers[i]))
	}
	return users, nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Save(r.domainToDB(user)).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// MarkVerified implements domain.UserRepository
func (r *UserRepositoryImpl) MarkVerified(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Update("email_verified", true).Error
}

// RecordLogin implements domain.UserRepository
func (r *UserRepositoryImpl) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Update("last_login_at", at).Error
}

// Delete implements domain.UserRepository
func (r *UserRepositoryImpl) Delete(ctx context.Context, userID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", userID).Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		RoleID:        user.RoleID,
		EmailVerified: user.EmailVerified,
		IsActive:      user.IsActive,
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:            dbUser.ID,
		Name:          dbUser.Name,
		Email:         dbUser.Email,
		PasswordHash:  dbUser.PasswordHash,
		RoleID:        dbUser.RoleID,
		EmailVerified: dbUser.EmailVerified,
		IsActive:      dbUser.IsActive,
		LastLoginAt:   dbUser.LastLoginAt,
		CreatedAt:     dbUser.CreatedAt,
		UpdatedAt:     dbUser.UpdatedAt,
	}
}
