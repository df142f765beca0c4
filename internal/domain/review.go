package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	CaravanID string    `json:"caravan_id"`
	GuestID   string    `json:"guest_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	CaravanID string
	GuestID   string
	Rating    int
	Comment   string
}
