package dto

import (
	"time"

	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	TrustScore     int    `json:"trust_score"`
	CreatedAt      string `json:"created_at"`
}

type CaravanResponse struct {
	ID          string `json:"id"`
	HostID      string `json:"host_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	PricePerDay int64  `json:"price_per_day"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ReservationResponse struct {
	ID         string `json:"id"`
	CaravanID  string `json:"caravan_id"`
	GuestID    string `json:"guest_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"total_price"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type PaymentResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	Amount        int64  `json:"amount"`
	PaymentDate   string `json:"payment_date"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

type ConfirmPaymentResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Payment     PaymentResponse     `json:"payment"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	CaravanID string `json:"caravan_id"`
	GuestID   string `json:"guest_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		TrustScore:     u.TrustScore,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCaravanResponse(c *domain.Caravan) CaravanResponse {
	return CaravanResponse{
		ID:          c.ID,
		HostID:      c.HostID,
		Name:        c.Name,
		Description: c.Description,
		Location:    c.Location,
		Capacity:    c.Capacity,
		PricePerDay: c.PricePerDay,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		CaravanID:  r.CaravanID,
		GuestID:    r.GuestID,
		StartDate:  r.StartDate.Format(domain.DateLayout),
		EndDate:    r.EndDate.Format(domain.DateLayout),
		Status:     string(r.Status),
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate.Format(time.RFC3339),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		CaravanID: r.CaravanID,
		GuestID:   r.GuestID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

// ToList преобразует срез доменных сущностей, пустой срез остаётся [] в JSON.
func ToList[T any, R any](items []*T, conv func(*T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	return out
}
