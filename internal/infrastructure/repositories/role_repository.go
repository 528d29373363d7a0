package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Cheskazzzz/portal-master/domain"
)

// RoleRepositoryImpl implements domain.RoleRepository using GORM
type RoleRepositoryImpl struct {
	db *gorm.DB
}

// DBRole represents the database model for Role
type DBRole struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;size:50;not null"`
	Description string
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (DBRole) TableName() string {
	return "portal_roles"
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) domain.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

// EnsureAll implements domain.RoleRepository. The unique index on name
// plus ON CONFLICT DO NOTHING makes concurrent seeding safe: a duplicate
// insert is a no-op, never a second row.
func (r *RoleRepositoryImpl) EnsureAll(ctx context.Context, roles []domain.Role) error {
	if len(roles) == 0 {
		return nil
	}
	dbRoles := make([]DBRole, 0, len(roles))
	for _, role := range roles {
		dbRoles = append(dbRoles, DBRole{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dbRoles).Error
}

// FindByID implements domain.RoleRepository
func (r *RoleRepositoryImpl) FindByID(ctx context.Context, id int) (*domain.Role, error) {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbRole), nil
}

// FindByName implements domain.RoleRepository
func (r *RoleRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dbRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbRole), nil
}

func (r *RoleRepositoryImpl) dbToDomain(dbRole *DBRole) *domain.Role {
	return &domain.Role{
		ID:          dbRole.ID,
		Name:        dbRole.Name,
		Description: dbRole.Description,
		CreatedAt:   dbRole.CreatedAt,
	}
}
