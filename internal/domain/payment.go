package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	Amount        int64         `json:"amount"`
	PaymentDate   time.Time     `json:"payment_date"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id"`
}
