package admin

import (
	"context"
	domainAdmin "restaurant-platform/internal/domain/admin"

	"github.com/google/uuid"
)

// Service exposes the back-office admin read slice.
type Service struct {
	adminRepo domainAdmin.Repository
}

func NewService(adminRepo domainAdmin.Repository) *Service {
	return &Service{adminRepo: adminRepo}
}

func (s *Service) GetAll(ctx context.Context) ([]*AdminResponse, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*AdminResponse, len(admins))
	for i, a := range admins {
		responses[i] = ToAdminResponse(a)
	}

	return responses, nil
}

func (s *Service) GetByID(ctx context.Context, adminID uuid.UUID) (*AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return ToAdminResponse(admin), nil
}
