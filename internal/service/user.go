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

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       username,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Рейтинг доверия

func (s *UserService) RecordReviewGiven(ctx context.Context, guestID string) error {
	return s.addTrust(ctx, guestID, domain.TrustReviewGiven)
}

func (s *UserService) RecordReservationCompletion(ctx context.Context, guestID string) error {
	return s.addTrust(ctx, guestID, domain.TrustReservationCompletion)
}

func (s *UserService) RecordHostRating(ctx context.Context, hostID string, rating int) error {
	delta := domain.HostRatingDelta(rating)
	if delta == 0 {
		return nil
	}
	return s.addTrust(ctx, hostID, delta)
}

func (s *UserService) addTrust(ctx context.Context, userID string, delta int) error {
	if err := s.repo.AddTrustScore(ctx, userID, delta); err != nil {
		return fmt.Errorf("update trust score: %w", err)
	}
	return nil
}
