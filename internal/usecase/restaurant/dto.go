package restaurant

import (
	"time"

	"github.com/google/uuid"
	domainRestaurant "restaurant-platform/internal/domain/restaurant"
)

type CreateRestaurantRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	Address      string `json:"address" validate:"omitempty,max=255"`
	CoverImage   string `json:"cover_image" validate:"omitempty,max=2048"`
	CategoryName string `json:"category_name" validate:"required,min=2,max=255"`
}

type EditRestaurantRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	Name         *string   `json:"name" validate:"omitempty,min=2,max=255"`
	Address      *string   `json:"address" validate:"omitempty,max=255"`
	CoverImage   *string   `json:"cover_image" validate:"omitempty,max=2048"`
	CategoryName *string   `json:"category_name" validate:"omitempty,min=2,max=255"`
}

type RestaurantResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	CoverImage string     `json:"cover_image,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	OwnerID    uuid.UUID  `json:"owner_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CategoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	CoverImage string    `json:"cover_image,omitempty"`
}

func ToRestaurantResponse(r *domainRestaurant.Restaurant) *RestaurantResponse {
	if r == nil {
		return nil
	}
	return &RestaurantResponse{
		ID:         r.ID,
		Name:       r.Name,
		Address:    r.Address,
		CoverImage: r.CoverImage,
		CategoryID: r.CategoryID,
		OwnerID:    r.OwnerID,
		CreatedAt:  r.CreatedAt,
	}
}

func ToCategoryResponse(c *domainRestaurant.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		CoverImage: c.CoverImage,
	}
}
