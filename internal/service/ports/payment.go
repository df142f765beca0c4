package ports

import (
	"context"

	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type PaymentRepo interface {
	// Settle сохраняет платёж и переводит бронь из awaiting_payment в confirmed атомарно.
	Settle(ctx context.Context, p *domain.Payment) error
	GetByReservationID(ctx context.Context, reservationID string) (*domain.Payment, error)
	List(ctx context.Context) ([]*domain.Payment, error)
	ListByReservationIDs(ctx context.Context, reservationIDs []string) ([]*domain.Payment, error)
}
