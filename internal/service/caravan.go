package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports"
)

type CaravanService struct {
	repo     ports.CaravanRepo
	userRepo ports.UserRepo
}

func NewCaravanService(repo ports.CaravanRepo, userRepo ports.UserRepo) *CaravanService {
	return &CaravanService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *CaravanService) Create(ctx context.Context, input domain.CreateCaravanInput) (*domain.Caravan, error) {
	if input.HostID == "" {
		return nil, fmt.Errorf("%w: host_id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.PricePerDay < 0 {
		return nil, fmt.Errorf("%w: price_per_day must not be negative", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.HostID); err != nil {
		return nil, fmt.Errorf("check host: %w", err)
	}

	caravan := &domain.Caravan{
		ID:          uuid.New().String(),
		HostID:      input.HostID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Location:    input.Location,
		Capacity:    input.Capacity,
		PricePerDay: input.PricePerDay,
		Status:      domain.CaravanStatusAvailable,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, caravan); err != nil {
		return nil, fmt.Errorf("create caravan: %w", err)
	}

	return caravan, nil
}

func (s *CaravanService) GetByID(ctx context.Context, id string) (*domain.Caravan, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CaravanService) List(ctx context.Context) ([]*domain.Caravan, error) {
	return s.repo.List(ctx)
}
