package admin

import (
	"time"

	"github.com/google/uuid"
	domainAdmin "restaurant-platform/internal/domain/admin"
)

type AdminResponse struct {
	ID         uuid.UUID `json:"id"`
	LoginID    string    `json:"login_id"`
	Name       string    `json:"name"`
	Role       *string   `json:"role,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Department *string   `json:"department,omitempty"`
	Title      *string   `json:"title,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToAdminResponse(a *domainAdmin.Admin) *AdminResponse {
	if a == nil {
		return nil
	}
	return &AdminResponse{
		ID:         a.ID,
		LoginID:    a.LoginID,
		Name:       a.Name,
		Role:       a.Role,
		Email:      a.Email,
		Phone:      a.Phone,
		Department: a.Department,
		Title:      a.Title,
		CreatedAt:  a.CreatedAt,
	}
}
