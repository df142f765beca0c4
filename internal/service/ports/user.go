package ports

import (
	"context"

	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	AddTrustScore(ctx context.Context, id string, delta int) error
}
