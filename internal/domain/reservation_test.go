package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationStatusPending, ReservationStatusAwaitingPayment, true},
		{ReservationStatusPending, ReservationStatusRejected, true},
		{ReservationStatusAwaitingPayment, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusConfirmed, false},
		{ReservationStatusAwaitingPayment, ReservationStatusRejected, false},
		{ReservationStatusRejected, ReservationStatusPending, false},
		{ReservationStatusConfirmed, ReservationStatusAwaitingPayment, false},
		{ReservationStatusConfirmed, ReservationStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservationStatus_IsActive(t *testing.T) {
	assert.True(t, ReservationStatusPending.IsActive())
	assert.True(t, ReservationStatusAwaitingPayment.IsActive())
	assert.True(t, ReservationStatusConfirmed.IsActive())
	assert.False(t, ReservationStatusRejected.IsActive())
	assert.False(t, ReservationStatusCancelled.IsActive())
}

func TestDecision_TargetStatus(t *testing.T) {
	s, err := DecisionApproved.TargetStatus()
	require.NoError(t, err)
	assert.Equal(t, ReservationStatusAwaitingPayment, s)

	s, err = DecisionRejected.TargetStatus()
	require.NoError(t, err)
	assert.Equal(t, ReservationStatusRejected, s)

	_, err = Decision("maybe").TargetStatus()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReservation_Overlaps(t *testing.T) {
	d := func(s string) time.Time {
		v, _ := time.Parse(DateLayout, s)
		return v
	}
	r := &Reservation{StartDate: d("2025-01-01"), EndDate: d("2025-01-05")}

	assert.True(t, r.Overlaps(d("2025-01-04"), d("2025-01-06")))
	assert.True(t, r.Overlaps(d("2024-12-30"), d("2025-01-02")))
	assert.False(t, r.Overlaps(d("2025-01-05"), d("2025-01-07")))
	assert.False(t, r.Overlaps(d("2024-12-28"), d("2025-01-01")))
}

func TestRentalDays(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(4), RentalDays(start, start.AddDate(0, 0, 4)))
	assert.Equal(t, int64(1), RentalDays(start, start.Add(3*time.Hour)))
	assert.Equal(t, int64(2), RentalDays(start, start.Add(25*time.Hour)))
}

func TestHostRatingDelta(t *testing.T) {
	assert.Equal(t, 15, HostRatingDelta(5))
	assert.Equal(t, -10, HostRatingDelta(1))
	for _, r := range []int{2, 3, 4} {
		assert.Zero(t, HostRatingDelta(r))
	}
}
