package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	TrustScore     int       `json:"trust_score"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	TelegramChatID *int64
}

// Изменения рейтинга доверия.
const (
	TrustReviewGiven           = 5
	TrustReservationCompletion = 10
	TrustHostTopRating         = 15
	TrustHostLowRating         = -10
)

// HostRatingDelta возвращает изменение рейтинга хозяина за оценку гостя.
func HostRatingDelta(rating int) int {
	switch rating {
	case 5:
		return TrustHostTopRating
	case 1:
		return TrustHostLowRating
	default:
		return 0
	}
}
