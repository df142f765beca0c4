package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type ReservationRepo interface {
	// Create повторно проверяет пересечение дат внутри той же транзакции
	// и возвращает domain.ErrReservationOverlap при конфликте.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// UpdateStatus меняет статус только если текущий равен from.
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
	ListByCaravanIDs(ctx context.Context, caravanIDs []string) ([]*domain.Reservation, error)
	FindOverlapping(ctx context.Context, caravanID string, start, end time.Time) ([]*domain.Reservation, error)
}
