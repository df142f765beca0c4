package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports"
)

type ReservationValidator struct {
	repo ports.ReservationRepo
}

func NewReservationValidator(repo ports.ReservationRepo) *ReservationValidator {
	return &ReservationValidator{repo: repo}
}

func (v *ReservationValidator) ValidateDates(start, end time.Time) error {
	if !start.Before(end) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

// CheckNoOverlap ищет активные брони каравана, пересекающиеся с [start, end).
func (v *ReservationValidator) CheckNoOverlap(ctx context.Context, caravanID string, start, end time.Time) error {
	existing, err := v.repo.FindOverlapping(ctx, caravanID, start, end)
	if err != nil {
		return fmt.Errorf("find overlapping: %w", err)
	}

	for _, r := range existing {
		if r.Status.IsActive() && r.Overlaps(start, end) {
			return domain.ErrReservationOverlap
		}
	}

	return nil
}
