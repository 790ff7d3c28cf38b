package restaurant

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the store contract for restaurants.
type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	GetByID(ctx context.Context, restaurantID uuid.UUID) (*Restaurant, error)
	// GetOwnerID fetches only the owning user's id for an ownership check,
	// without loading the full relation.
	GetOwnerID(ctx context.Context, restaurantID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, restaurant *Restaurant) error
	List(ctx context.Context) ([]*Restaurant, error)
}

// CategoryRepository defines the store contract for categories. Create must
// surface ErrCategoryAlreadyExists on a slug uniqueness violation so callers
// can re-fetch the winner of a concurrent create.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
