package restaurant

import "errors"

// The error texts below are part of the public API contract and must not be
// reworded; clients match on them.
var (
	ErrRestaurantNotFound     = errors.New("Restaurant not found")
	ErrNotOwner               = errors.New("You can't edit a restaurant that you don't own")
	ErrCreateRestaurantFailed = errors.New("Could not create Restaurant")
	ErrEditRestaurantFailed   = errors.New("Could not edit Restaurant")
	ErrCategoryAlreadyExists  = errors.New("category already exists")
	ErrCategoryNotFound       = errors.New("category not found")
)
