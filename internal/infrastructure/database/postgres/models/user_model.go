package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for User
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(50);not null;default:'client'"`
	Verified       bool      `gorm:"default:false;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// VerificationModel represents the database model for Verification. A user
// holds at most one live code; the row cascades with its user.
type VerificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code      string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (VerificationModel) TableName() string {
	return "verifications"
}
