package postgres

import (
	"context"
	"errors"
	"fmt"
	domainUser "restaurant-platform/internal/domain/user"
	"restaurant-platform/internal/infrastructure/database/postgres/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements domain user.Repository
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) domainUser.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domainUser.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		errStr := strings.ToLower(err.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "email") {
			return domainUser.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.CreatedAt = dbModel.CreatedAt
	u.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) Update(ctx context.Context, u *domainUser.User) error {
	u.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"email":           u.Email,
			"password_hashed": u.PasswordHashed,
			"role":            string(u.Role),
			"verified":        u.Verified,
			"updated_at":      u.UpdatedAt,
		})

	if result.Error != nil {
		errStr := strings.ToLower(result.Error.Error())
		if strings.Contains(errStr, "duplicate key") && strings.Contains(errStr, "email") {
			return domainUser.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}

	return nil
}

// VerificationRepository implements domain user.VerificationRepository
type VerificationRepository struct {
	db *DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *DB) domainUser.VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Create(ctx context.Context, v *domainUser.Verification) error {
	v.ID = uuid.New()
	v.CreatedAt = time.Now()

	// A user holds at most one live code; a new code supersedes the old one.
	if err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", v.UserID).
		Delete(&models.VerificationModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear prior verification: %w", err)
	}

	dbModel := toVerificationModel(v)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}

	v.ID = dbModel.ID
	v.CreatedAt = dbModel.CreatedAt

	return nil
}

func (r *VerificationRepository) GetByCode(ctx context.Context, code string) (*domainUser.Verification, error) {
	var dbModel models.VerificationModel
	err := r.db.DB.WithContext(ctx).
		Preload("User").
		Where("code = ?", code).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrVerificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	return toVerificationEntity(&dbModel), nil
}

func (r *VerificationRepository) Delete(ctx context.Context, verificationID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", verificationID).
		Delete(&models.VerificationModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete verification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrVerificationNotFound
	}

	return nil
}

// Helper functions to convert between domain entities and database models

func toUserModel(u *domainUser.User) *models.UserModel {
	return &models.UserModel{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHashed: u.PasswordHashed,
		Role:           string(u.Role),
		Verified:       u.Verified,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *domainUser.User {
	return &domainUser.User{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		Role:           domainUser.Role(m.Role),
		Verified:       m.Verified,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toVerificationModel(v *domainUser.Verification) *models.VerificationModel {
	return &models.VerificationModel{
		ID:        v.ID,
		Code:      v.Code,
		UserID:    v.UserID,
		CreatedAt: v.CreatedAt,
	}
}

func toVerificationEntity(m *models.VerificationModel) *domainUser.Verification {
	v := &domainUser.Verification{
		ID:        m.ID,
		Code:      m.Code,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		v.User = toUserEntity(m.User)
	}
	return v
}
