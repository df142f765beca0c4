package domain

import "time"

type CaravanStatus string

const (
	CaravanStatusAvailable   CaravanStatus = "available"
	CaravanStatusUnavailable CaravanStatus = "unavailable"
)

// Caravan описывает сдаваемый в аренду дом на колёсах. Цена в минимальных единицах валюты.
type Caravan struct {
	ID          string        `json:"id"`
	HostID      string        `json:"host_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Capacity    int           `json:"capacity"`
	PricePerDay int64         `json:"price_per_day"`
	Status      CaravanStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

type CreateCaravanInput struct {
	HostID      string
	Name        string
	Description string
	Location    string
	Capacity    int
	PricePerDay int64
}
