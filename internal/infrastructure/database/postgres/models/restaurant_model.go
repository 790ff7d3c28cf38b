package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel represents the database model for Category
type CategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Slug       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CoverImage string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// RestaurantModel represents the database model for Restaurant. The owner is
// mandatory and the row cascades with it; the category is optional and is
// cleared when the category goes away.
type RestaurantModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string         `gorm:"type:varchar(255);not null"`
	Address    string         `gorm:"type:varchar(255);not null;default:'unknown address'"`
	CoverImage string         `gorm:"type:text"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	OwnerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Owner      *UserModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
}

func (RestaurantModel) TableName() string {
	return "restaurants"
}

// AdminModel represents the database model for back-office admins.
type AdminModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LoginID    string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(32);not null"`
	Role       *string   `gorm:"type:varchar(32)"`
	Email      *string   `gorm:"type:varchar(64)"`
	Phone      *string   `gorm:"type:varchar(16)"`
	Department *string   `gorm:"type:varchar(32)"`
	Title      *string   `gorm:"type:varchar(32)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (AdminModel) TableName() string {
	return "admins"
}
