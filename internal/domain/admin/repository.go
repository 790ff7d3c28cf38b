package admin

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the read contract for back-office admins.
type Repository interface {
	GetAll(ctx context.Context) ([]*Admin, error)
	GetByID(ctx context.Context, adminID uuid.UUID) (*Admin, error)
}
