package ports

import (
	"context"

	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type CaravanRepo interface {
	Create(ctx context.Context, c *domain.Caravan) error
	GetByID(ctx context.Context, id string) (*domain.Caravan, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Caravan, error)
	List(ctx context.Context) ([]*domain.Caravan, error)
}
