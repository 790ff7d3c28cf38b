package restaurant

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents a restaurant entity in the domain. Every restaurant
// belongs to exactly one owning user; the category is optional and may be
// cleared without deleting the restaurant.
type Restaurant struct {
	ID         uuid.UUID
	Name       string
	Address    string
	CoverImage string
	CategoryID *uuid.UUID
	OwnerID    uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Category groups restaurants under a unique name and a unique URL-safe slug
// derived deterministically from that name.
type Category struct {
	ID         uuid.UUID
	Name       string
	Slug       string
	CoverImage string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
