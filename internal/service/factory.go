package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CaravanBooker/internal/domain"
)

// ReservationFactory собирает запись брони. Проверки выполняет вызывающий.
type ReservationFactory struct {
	now func() time.Time
}

func NewReservationFactory() *ReservationFactory {
	return &ReservationFactory{now: func() time.Time { return time.Now().UTC() }}
}

func (f *ReservationFactory) New(
	caravanID, guestID string,
	start, end time.Time,
	totalPrice int64,
	status domain.ReservationStatus,
) *domain.Reservation {
	if status == "" {
		status = domain.ReservationStatusPending
	}
	now := f.now()

	return &domain.Reservation{
		ID:         uuid.New().String(),
		CaravanID:  caravanID,
		GuestID:    guestID,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
		TotalPrice: totalPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
