package admin

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a back-office operator. Admins are provisioned out of
// band; the platform only reads them.
type Admin struct {
	ID         uuid.UUID
	LoginID    string
	Name       string
	Role       *string
	Email      *string
	Phone      *string
	Department *string
	Title      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
