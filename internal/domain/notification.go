package domain

import "time"

type NotificationType string

const (
	NotificationNewReservation   NotificationType = "new_reservation"
	NotificationStatusChange     NotificationType = "status_change"
	NotificationPaymentConfirmed NotificationType = "payment_confirmed"
)

// Notification описывает событие жизненного цикла брони. Не сохраняется.
type Notification struct {
	Type          NotificationType  `json:"type"`
	ReservationID string            `json:"reservation_id"`
	UserID        string            `json:"user_id,omitempty"`
	NewStatus     ReservationStatus `json:"new_status,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
