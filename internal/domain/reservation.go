package domain

import (
	"math"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending         ReservationStatus = "pending"
	ReservationStatusApproved        ReservationStatus = "approved"
	ReservationStatusRejected        ReservationStatus = "rejected"
	ReservationStatusAwaitingPayment ReservationStatus = "awaiting_payment"
	ReservationStatusConfirmed       ReservationStatus = "confirmed"
	ReservationStatusCancelled       ReservationStatus = "cancelled"
)

// ActiveStatuses перечисляет статусы, которые занимают даты каравана.
var ActiveStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusAwaitingPayment,
	ReservationStatusConfirmed,
}

var transitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:         {ReservationStatusAwaitingPayment, ReservationStatusRejected},
	ReservationStatusAwaitingPayment: {ReservationStatusConfirmed},
}

func (s ReservationStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// CanTransitionTo сообщает, разрешён ли переход. Переходы только вперёд.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Decision описывает решение хозяина по заявке.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// TargetStatus отображает решение в новый статус брони.
func (d Decision) TargetStatus() (ReservationStatus, error) {
	switch d {
	case DecisionApproved:
		return ReservationStatusAwaitingPayment, nil
	case DecisionRejected:
		return ReservationStatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

type Reservation struct {
	ID         string            `json:"id"`
	CaravanID  string            `json:"caravan_id"`
	GuestID    string            `json:"guest_id"`
	StartDate  time.Time         `json:"start_date"`
	EndDate    time.Time         `json:"end_date"`
	Status     ReservationStatus `json:"status"`
	TotalPrice int64             `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Overlaps проверяет пересечение полуоткрытых интервалов [start, end).
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return start.Before(r.EndDate) && end.After(r.StartDate)
}

type CreateReservationInput struct {
	CaravanID string
	GuestID   string
	StartDate time.Time
	EndDate   time.Time
}

const DateLayout = "2006-01-02"

// TruncateDate приводит момент времени к дате (полночь UTC).
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RentalDays возвращает число суток аренды, неполные сутки округляются вверх.
func RentalDays(start, end time.Time) int64 {
	return int64(math.Ceil(end.Sub(start).Hours() / 24))
}
