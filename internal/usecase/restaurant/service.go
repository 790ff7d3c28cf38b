package restaurant

import (
	"context"
	"errors"
	domainRestaurant "restaurant-platform/internal/domain/restaurant"
	domainUser "restaurant-platform/internal/domain/user"
	"restaurant-platform/internal/logger"
	appErrors "restaurant-platform/pkg/errors"
	"restaurant-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the catalog use cases: restaurant create/edit with
// ownership enforcement and category find-or-create.
type Service struct {
	restaurantRepo domainRestaurant.Repository
	categoryRepo   domainRestaurant.CategoryRepository
}

// NewService creates a new catalog service
func NewService(
	restaurantRepo domainRestaurant.Repository,
	categoryRepo domainRestaurant.CategoryRepository,
) *Service {
	return &Service{
		restaurantRepo: restaurantRepo,
		categoryRepo:   categoryRepo,
	}
}

// GetOrCreateCategory resolves a display name to its category, creating it
// when absent. Equivalent names differing in case or whitespace resolve to
// the same row; the unique slug index backstops the lookup-then-create race.
func (s *Service) GetOrCreateCategory(ctx context.Context, name string) (*domainRestaurant.Category, error) {
	categoryName := utils.NormalizeCategoryName(name)
	categorySlug := utils.Slugify(categoryName)

	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, domainRestaurant.ErrCategoryNotFound) {
		return nil, err
	}

	category = &domainRestaurant.Category{
		Name: categoryName,
		Slug: categorySlug,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainRestaurant.ErrCategoryAlreadyExists) {
			// Lost the race; the winner's row is the category.
			return s.categoryRepo.GetBySlug(ctx, categorySlug)
		}
		return nil, err
	}

	logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug),
		zap.String("event", "category_created"),
	)

	return category, nil
}

func (s *Service) CreateRestaurant(ctx context.Context, owner *domainUser.User, req *CreateRestaurantRequest) (*RestaurantResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	category, err := s.GetOrCreateCategory(ctx, req.CategoryName)
	if err != nil {
		logger.Error("Failed to resolve category",
			zap.String("category_name", req.CategoryName),
			zap.Error(err),
		)
		return nil, domainRestaurant.ErrCreateRestaurantFailed
	}

	restaurant := &domainRestaurant.Restaurant{
		Name:       req.Name,
		Address:    req.Address,
		CoverImage: req.CoverImage,
		CategoryID: &category.ID,
		OwnerID:    owner.ID,
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		logger.Error("Failed to create restaurant",
			zap.String("owner_id", owner.ID.String()),
			zap.Error(err),
		)
		return nil, domainRestaurant.ErrCreateRestaurantFailed
	}

	logger.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("owner_id", owner.ID.String()),
		zap.String("event", "restaurant_created"),
	)

	return ToRestaurantResponse(restaurant), nil
}

func (s *Service) EditRestaurant(ctx context.Context, owner *domainUser.User, req *EditRestaurantRequest) (*RestaurantResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	// Ownership is checked against the owner-id projection; the full row is
	// loaded only once the caller is allowed to touch it.
	ownerID, err := s.restaurantRepo.GetOwnerID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, domainRestaurant.ErrRestaurantNotFound) {
			return nil, domainRestaurant.ErrRestaurantNotFound
		}
		return nil, domainRestaurant.ErrEditRestaurantFailed
	}

	if owner.ID != ownerID {
		logger.Warn("Edit attempt by non-owner",
			zap.String("restaurant_id", req.RestaurantID.String()),
			zap.String("caller_id", owner.ID.String()),
			zap.String("event", "edit_restaurant_forbidden"),
		)
		return nil, domainRestaurant.ErrNotOwner
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, domainRestaurant.ErrRestaurantNotFound) {
			return nil, domainRestaurant.ErrRestaurantNotFound
		}
		return nil, domainRestaurant.ErrEditRestaurantFailed
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Address != nil {
		restaurant.Address = *req.Address
	}
	if req.CoverImage != nil {
		restaurant.CoverImage = *req.CoverImage
	}
	if req.CategoryName != nil {
		category, err := s.GetOrCreateCategory(ctx, *req.CategoryName)
		if err != nil {
			logger.Error("Failed to resolve category",
				zap.String("category_name", *req.CategoryName),
				zap.Error(err),
			)
			return nil, domainRestaurant.ErrEditRestaurantFailed
		}
		restaurant.CategoryID = &category.ID
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		logger.Error("Failed to update restaurant",
			zap.String("restaurant_id", restaurant.ID.String()),
			zap.Error(err),
		)
		return nil, domainRestaurant.ErrEditRestaurantFailed
	}

	logger.Info("Restaurant updated",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("event", "restaurant_updated"),
	)

	return ToRestaurantResponse(restaurant), nil
}

func (s *Service) GetRestaurant(ctx context.Context, restaurantID uuid.UUID) (*RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return ToRestaurantResponse(restaurant), nil
}

func (s *Service) ListRestaurants(ctx context.Context) ([]*RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*RestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		responses[i] = ToRestaurantResponse(r)
	}

	return responses, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}

	return responses, nil
}
