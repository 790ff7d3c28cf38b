package postgres

import (
	"context"
	"errors"
	"fmt"
	domainAdmin "restaurant-platform/internal/domain/admin"
	"restaurant-platform/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRepository implements domain admin.Repository
type AdminRepository struct {
	db *DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *DB) domainAdmin.Repository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetAll(ctx context.Context) ([]*domainAdmin.Admin, error) {
	var dbModels []models.AdminModel
	err := r.db.DB.WithContext(ctx).Order("created_at ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	admins := make([]*domainAdmin.Admin, len(dbModels))
	for i := range dbModels {
		admins[i] = toAdminEntity(&dbModels[i])
	}

	return admins, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, adminID uuid.UUID) (*domainAdmin.Admin, error) {
	var dbModel models.AdminModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", adminID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainAdmin.ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return toAdminEntity(&dbModel), nil
}

func toAdminEntity(m *models.AdminModel) *domainAdmin.Admin {
	return &domainAdmin.Admin{
		ID:         m.ID,
		LoginID:    m.LoginID,
		Name:       m.Name,
		Role:       m.Role,
		Email:      m.Email,
		Phone:      m.Phone,
		Department: m.Department,
		Title:      m.Title,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
