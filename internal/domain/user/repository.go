package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the credential-store contract for users.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	Update(ctx context.Context, user *User) error
}

// VerificationRepository defines the store contract for verification codes.
type VerificationRepository interface {
	// Create persists a verification, replacing any prior code held by the
	// same user.
	Create(ctx context.Context, verification *Verification) error
	// GetByCode eager-loads the owning user alongside the verification.
	GetByCode(ctx context.Context, code string) (*Verification, error)
	// Delete consumes a verification so the same code cannot be replayed.
	Delete(ctx context.Context, verificationID uuid.UUID) error
}
