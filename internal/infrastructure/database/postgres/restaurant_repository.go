package postgres

import (
	"context"
	"errors"
	"fmt"
	domainRestaurant "restaurant-platform/internal/domain/restaurant"
	"restaurant-platform/internal/infrastructure/database/postgres/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantRepository implements domain restaurant.Repository
type RestaurantRepository struct {
	db *DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *DB) domainRestaurant.Repository {
	return &RestaurantRepository{db: db}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *domainRestaurant.Restaurant) error {
	rest.ID = uuid.New()
	rest.CreatedAt = time.Now()
	rest.UpdatedAt = time.Now()

	dbModel := toRestaurantModel(rest)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	rest.ID = dbModel.ID
	rest.CreatedAt = dbModel.CreatedAt
	rest.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *RestaurantRepository) GetByID(ctx context.Context, restaurantID uuid.UUID) (*domainRestaurant.Restaurant, error) {
	var dbModel models.RestaurantModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", restaurantID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainRestaurant.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return toRestaurantEntity(&dbModel), nil
}

// GetOwnerID selects only the owner foreign key, skipping the relation load.
func (r *RestaurantRepository) GetOwnerID(ctx context.Context, restaurantID uuid.UUID) (uuid.UUID, error) {
	var dbModel models.RestaurantModel
	err := r.db.DB.WithContext(ctx).
		Select("id", "owner_id").
		First(&dbModel, "id = ?", restaurantID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, domainRestaurant.ErrRestaurantNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to get restaurant owner: %w", err)
	}

	return dbModel.OwnerID, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, rest *domainRestaurant.Restaurant) error {
	rest.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.RestaurantModel{}).
		Where("id = ?", rest.ID).
		Updates(map[string]interface{}{
			"name":        rest.Name,
			"address":     rest.Address,
			"cover_image": rest.CoverImage,
			"category_id": rest.CategoryID,
			"updated_at":  rest.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update restaurant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainRestaurant.ErrRestaurantNotFound
	}

	return nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]*domainRestaurant.Restaurant, error) {
	var dbModels []models.RestaurantModel
	err := r.db.DB.WithContext(ctx).Order("created_at DESC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	restaurants := make([]*domainRestaurant.Restaurant, len(dbModels))
	for i := range dbModels {
		restaurants[i] = toRestaurantEntity(&dbModels[i])
	}

	return restaurants, nil
}

// CategoryRepository implements domain restaurant.CategoryRepository
type CategoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *DB) domainRestaurant.CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domainRestaurant.Category) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	dbModel := toCategoryModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return domainRestaurant.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	c.ID = dbModel.ID
	c.CreatedAt = dbModel.CreatedAt
	c.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domainRestaurant.Category, error) {
	var dbModel models.CategoryModel
	err := r.db.DB.WithContext(ctx).Where("slug = ?", slug).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainRestaurant.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return toCategoryEntity(&dbModel), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domainRestaurant.Category, error) {
	var dbModels []models.CategoryModel
	err := r.db.DB.WithContext(ctx).Order("name ASC").Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domainRestaurant.Category, len(dbModels))
	for i := range dbModels {
		categories[i] = toCategoryEntity(&dbModels[i])
	}

	return categories, nil
}

// Helper functions to convert between domain entities and database models

func toRestaurantModel(rest *domainRestaurant.Restaurant) *models.RestaurantModel {
	return &models.RestaurantModel{
		ID:         rest.ID,
		Name:       rest.Name,
		Address:    rest.Address,
		CoverImage: rest.CoverImage,
		CategoryID: rest.CategoryID,
		OwnerID:    rest.OwnerID,
		CreatedAt:  rest.CreatedAt,
		UpdatedAt:  rest.UpdatedAt,
	}
}

func toRestaurantEntity(m *models.RestaurantModel) *domainRestaurant.Restaurant {
	return &domainRestaurant.Restaurant{
		ID:         m.ID,
		Name:       m.Name,
		Address:    m.Address,
		CoverImage: m.CoverImage,
		CategoryID: m.CategoryID,
		OwnerID:    m.OwnerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toCategoryModel(c *domainRestaurant.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		CoverImage: c.CoverImage,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toCategoryEntity(m *models.CategoryModel) *domainRestaurant.Category {
	return &domainRestaurant.Category{
		ID:         m.ID,
		Name:       m.Name,
		Slug:       m.Slug,
		CoverImage: m.CoverImage,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
