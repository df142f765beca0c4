package dto

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateCaravanRequest struct {
	HostID      string `json:"host_id"       binding:"required,uuid"`
	Name        string `json:"name"          binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"      binding:"required,gt=0"`
	PricePerDay int64  `json:"price_per_day" binding:"min=0"`
}

// Даты передаются в формате YYYY-MM-DD.
type CreateReservationRequest struct {
	CaravanID string `json:"caravan_id" binding:"required,uuid"`
	GuestID   string `json:"guest_id"   binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"   binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateReviewRequest struct {
	GuestID string `json:"guest_id" binding:"required,uuid"`
	Rating  int    `json:"rating"   binding:"required"`
	Comment string `json:"comment"`
}
