package user

import (
	"time"

	"github.com/google/uuid"
)

// Role enumerates the kinds of accounts on the platform.
type Role string

const (
	RoleClient   Role = "client"
	RoleOwner    Role = "owner"
	RoleDelivery Role = "delivery"
)

// IsValid reports whether the role is one of the known account kinds.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return true
	}
	return false
}

// User represents a user entity in the domain. The password is stored hashed
// and is never exposed as plaintext after save.
type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHashed string
	Role           Role
	Verified       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Verification is the single-use random code proving control of a user's
// email address. It is created whenever a user is created or changes email
// and is consumed exactly once on successful verification.
type Verification struct {
	ID        uuid.UUID
	Code      string
	UserID    uuid.UUID
	User      *User
	CreatedAt time.Time
}

// NewCode generates a fresh unique verification code.
func NewCode() string {
	return uuid.New().String()
}
