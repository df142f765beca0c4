package ports

import (
	"context"

	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByCaravan(ctx context.Context, caravanID string) ([]*domain.Review, error)
}
