package restaurant

import (
	"context"
	"os"
	domainRestaurant "restaurant-platform/internal/domain/restaurant"
	domainUser "restaurant-platform/internal/domain/user"
	"restaurant-platform/internal/logger"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type mockRestaurantRepo struct {
	mock.Mock
}

func (m *mockRestaurantRepo) Create(ctx context.Context, restaurant *domainRestaurant.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepo) GetByID(ctx context.Context, restaurantID uuid.UUID) (*domainRestaurant.Restaurant, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainRestaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) GetOwnerID(ctx context.Context, restaurantID uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockRestaurantRepo) Update(ctx context.Context, restaurant *domainRestaurant.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepo) List(ctx context.Context) ([]*domainRestaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainRestaurant.Restaurant), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domainRestaurant.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*domainRestaurant.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainRestaurant.Category), args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*domainRestaurant.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainRestaurant.Category), args.Error(1)
}

func testOwner() *domainUser.User {
	return &domainUser.User{
		ID:    uuid.New(),
		Email: "owner@x.com",
		Role:  domainUser.RoleOwner,
	}
}

func TestGetOrCreateCategoryReusesExisting(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	existing := &domainRestaurant.Category{
		ID:   uuid.New(),
		Name: "italian food",
		Slug: "italian-food",
	}
	categoryRepo.On("GetBySlug", mock.Anything, "italian-food").Return(existing, nil)

	// Name variants differing in case and whitespace all land on one row.
	for _, name := range []string{"Italian Food", " italian food ", "ITALIAN FOOD"} {
		category, err := svc.GetOrCreateCategory(context.Background(), name)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, category.ID)
	}

	categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetOrCreateCategoryCreatesWhenAbsent(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	categoryRepo.On("GetBySlug", mock.Anything, "korean-bbq").
		Return(nil, domainRestaurant.ErrCategoryNotFound)
	categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domainRestaurant.Category) bool {
		return c.Name == "korean bbq" && c.Slug == "korean-bbq"
	})).Return(nil)

	category, err := svc.GetOrCreateCategory(context.Background(), "Korean BBQ")
	require.NoError(t, err)
	assert.Equal(t, "korean bbq", category.Name)
	assert.Equal(t, "korean-bbq", category.Slug)
	categoryRepo.AssertExpectations(t)
}

func TestGetOrCreateCategoryLostRace(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	winner := &domainRestaurant.Category{
		ID:   uuid.New(),
		Name: "korean bbq",
		Slug: "korean-bbq",
	}

	// First lookup misses, the insert collides, the re-fetch finds the winner.
	categoryRepo.On("GetBySlug", mock.Anything, "korean-bbq").
		Return(nil, domainRestaurant.ErrCategoryNotFound).Once()
	categoryRepo.On("Create", mock.Anything, mock.Anything).
		Return(domainRestaurant.ErrCategoryAlreadyExists).Once()
	categoryRepo.On("GetBySlug", mock.Anything, "korean-bbq").
		Return(winner, nil).Once()

	category, err := svc.GetOrCreateCategory(context.Background(), "Korean BBQ")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, category.ID)
	categoryRepo.AssertExpectations(t)
}

func TestCreateRestaurantAssignsOwnerAndCategory(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)
	owner := testOwner()

	category := &domainRestaurant.Category{
		ID:   uuid.New(),
		Name: "fast food",
		Slug: "fast-food",
	}
	categoryRepo.On("GetBySlug", mock.Anything, "fast-food").Return(category, nil)
	restaurantRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domainRestaurant.Restaurant) bool {
		return r.OwnerID == owner.ID && r.CategoryID != nil && *r.CategoryID == category.ID
	})).Return(nil)

	resp, err := svc.CreateRestaurant(context.Background(), owner, &CreateRestaurantRequest{
		Name:         "BBQ House",
		Address:      "123 Main St",
		CategoryName: "Fast Food",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, resp.OwnerID)
	restaurantRepo.AssertExpectations(t)
}

func TestCreateRestaurantStoreFailure(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	category := &domainRestaurant.Category{ID: uuid.New(), Name: "fast food", Slug: "fast-food"}
	categoryRepo.On("GetBySlug", mock.Anything, "fast-food").Return(category, nil)
	restaurantRepo.On("Create", mock.Anything, mock.Anything).
		Return(assert.AnError)

	_, err := svc.CreateRestaurant(context.Background(), testOwner(), &CreateRestaurantRequest{
		Name:         "BBQ House",
		CategoryName: "Fast Food",
	})
	assert.EqualError(t, err, "Could not create Restaurant")
}

func TestEditRestaurantNotOwner(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	restaurantID := uuid.New()
	restaurantRepo.On("GetOwnerID", mock.Anything, restaurantID).Return(uuid.New(), nil)

	newName := "Hijacked"
	_, err := svc.EditRestaurant(context.Background(), testOwner(), &EditRestaurantRequest{
		RestaurantID: restaurantID,
		Name:         &newName,
	})
	assert.EqualError(t, err, "You can't edit a restaurant that you don't own")

	// The denial happens on the owner-id projection alone. Nothing is loaded
	// and nothing is written.
	restaurantRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	restaurantRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEditRestaurantNotFound(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	restaurantID := uuid.New()
	restaurantRepo.On("GetOwnerID", mock.Anything, restaurantID).
		Return(uuid.Nil, domainRestaurant.ErrRestaurantNotFound)

	newName := "Renamed"
	_, err := svc.EditRestaurant(context.Background(), testOwner(), &EditRestaurantRequest{
		RestaurantID: restaurantID,
		Name:         &newName,
	})
	assert.EqualError(t, err, "Restaurant not found")
}

func TestEditRestaurantAppliesChanges(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)
	owner := testOwner()

	restaurantID := uuid.New()
	stored := &domainRestaurant.Restaurant{
		ID:      restaurantID,
		Name:    "Old Name",
		Address: "old address",
		OwnerID: owner.ID,
	}
	newCategory := &domainRestaurant.Category{ID: uuid.New(), Name: "sushi", Slug: "sushi"}

	restaurantRepo.On("GetOwnerID", mock.Anything, restaurantID).Return(owner.ID, nil)
	restaurantRepo.On("GetByID", mock.Anything, restaurantID).Return(stored, nil)
	categoryRepo.On("GetBySlug", mock.Anything, "sushi").Return(newCategory, nil)
	restaurantRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *domainRestaurant.Restaurant) bool {
		return r.Name == "New Name" &&
			r.Address == "old address" &&
			r.CategoryID != nil && *r.CategoryID == newCategory.ID
	})).Return(nil)

	newName := "New Name"
	categoryName := "Sushi"
	resp, err := svc.EditRestaurant(context.Background(), owner, &EditRestaurantRequest{
		RestaurantID: restaurantID,
		Name:         &newName,
		CategoryName: &categoryName,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", resp.Name)
	assert.Equal(t, "old address", resp.Address)
	restaurantRepo.AssertExpectations(t)
}

func TestEditRestaurantUpdateFailure(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)
	owner := testOwner()

	restaurantID := uuid.New()
	stored := &domainRestaurant.Restaurant{ID: restaurantID, Name: "Old Name", OwnerID: owner.ID}

	restaurantRepo.On("GetOwnerID", mock.Anything, restaurantID).Return(owner.ID, nil)
	restaurantRepo.On("GetByID", mock.Anything, restaurantID).Return(stored, nil)
	restaurantRepo.On("Update", mock.Anything, mock.Anything).Return(assert.AnError)

	newName := "New Name"
	_, err := svc.EditRestaurant(context.Background(), owner, &EditRestaurantRequest{
		RestaurantID: restaurantID,
		Name:         &newName,
	})
	assert.EqualError(t, err, "Could not edit Restaurant")
}

func TestGetRestaurantNotFound(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	restaurantID := uuid.New()
	restaurantRepo.On("GetByID", mock.Anything, restaurantID).
		Return(nil, domainRestaurant.ErrRestaurantNotFound)

	_, err := svc.GetRestaurant(context.Background(), restaurantID)
	assert.EqualError(t, err, "Restaurant not found")
}

func TestListRestaurants(t *testing.T) {
	restaurantRepo := new(mockRestaurantRepo)
	categoryRepo := new(mockCategoryRepo)
	svc := NewService(restaurantRepo, categoryRepo)

	stored := []*domainRestaurant.Restaurant{
		{ID: uuid.New(), Name: "First", OwnerID: uuid.New()},
		{ID: uuid.New(), Name: "Second", OwnerID: uuid.New()},
	}
	restaurantRepo.On("List", mock.Anything).Return(stored, nil)

	restaurants, err := svc.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "First", restaurants[0].Name)
	assert.Equal(t, "Second", restaurants[1].Name)
}
