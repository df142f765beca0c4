package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type reviewTrustLedger interface {
	RecordReviewGiven(ctx context.Context, guestID string) error
	RecordHostRating(ctx context.Context, hostID string, rating int) error
}

type ReviewService struct {
	repo        ports.ReviewRepo
	caravanRepo ports.CaravanRepo
	userRepo    ports.UserRepo
	trust       reviewTrustLedger
	logger      logger.Logger
}

func NewReviewService(
	repo ports.ReviewRepo,
	caravanRepo ports.CaravanRepo,
	userRepo ports.UserRepo,
	trust reviewTrustLedger,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		repo:        repo,
		caravanRepo: caravanRepo,
		userRepo:    userRepo,
		trust:       trust,
		logger:      logger,
	}
}

func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	caravan, err := s.caravanRepo.GetByID(ctx, input.CaravanID)
	if err != nil {
		return nil, fmt.Errorf("check caravan: %w", err)
	}

	if _, err = s.userRepo.GetByID(ctx, input.GuestID); err != nil {
		return nil, fmt.Errorf("check guest: %w", err)
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		CaravanID: caravan.ID,
		GuestID:   input.GuestID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	if err = s.trust.RecordReviewGiven(ctx, input.GuestID); err != nil {
		return nil, fmt.Errorf("record review given: %w", err)
	}
	if err = s.trust.RecordHostRating(ctx, caravan.HostID, input.Rating); err != nil {
		return nil, fmt.Errorf("record host rating: %w", err)
	}

	s.logger.Info("review created",
		logger.String("review_id", review.ID),
		logger.String("caravan_id", caravan.ID),
		logger.Int("rating", review.Rating),
	)

	return review, nil
}

func (s *ReviewService) ListByCaravan(ctx context.Context, caravanID string) ([]*domain.Review, error) {
	if _, err := s.caravanRepo.GetByID(ctx, caravanID); err != nil {
		return nil, fmt.Errorf("check caravan: %w", err)
	}
	return s.repo.ListByCaravan(ctx, caravanID)
}
