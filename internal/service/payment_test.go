package service

import (
	"context"
	"testing"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentService(t *testing.T) (*PaymentService, *mocks.MockPaymentRepo, *mocks.MockReservationRepo) {
	t.Helper()
	payments := mocks.NewMockPaymentRepo(t)
	reservations := mocks.NewMockReservationRepo(t)
	return NewPaymentService(payments, reservations, newTestLogger(t)), payments, reservations
}

func TestPaymentService_ProcessPayment_Success(t *testing.T) {
	svc, payments, reservations := newPaymentService(t)

	reservations.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", TotalPrice: 250, Status: domain.ReservationStatusAwaitingPayment}, nil)
	payments.EXPECT().Settle(mock.Anything, mock.Anything).Return(nil)

	p, err := svc.ProcessPayment(context.Background(), "r1")

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "r1", p.ReservationID)
	assert.Equal(t, int64(250), p.Amount)
	assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
	assert.NotEmpty(t, p.TransactionID)
	assert.False(t, p.PaymentDate.IsZero())
}

func TestPaymentService_ProcessPayment_NotFound(t *testing.T) {
	svc, _, reservations := newPaymentService(t)

	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.ProcessPayment(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaymentService_ProcessPayment_StatusChangedConcurrently(t *testing.T) {
	svc, payments, reservations := newPaymentService(t)

	reservations.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusAwaitingPayment}, nil)
	payments.EXPECT().Settle(mock.Anything, mock.Anything).Return(domain.ErrNotAwaitingPayment)

	_, err := svc.ProcessPayment(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrNotAwaitingPayment)
}

func TestPaymentService_ListByGuest_NoReservations(t *testing.T) {
	svc, payments, reservations := newPaymentService(t)

	reservations.EXPECT().ListByGuest(mock.Anything, "g1").Return([]*domain.Reservation{}, nil)

	got, err := svc.ListByGuest(context.Background(), "g1")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	payments.AssertNotCalled(t, "ListByReservationIDs", mock.Anything, mock.Anything)
}

func TestPaymentService_ListByGuest(t *testing.T) {
	svc, payments, reservations := newPaymentService(t)

	reservations.EXPECT().ListByGuest(mock.Anything, "g1").
		Return([]*domain.Reservation{{ID: "r1"}, {ID: "r2"}}, nil)
	payments.EXPECT().ListByReservationIDs(mock.Anything, []string{"r1", "r2"}).
		Return([]*domain.Payment{{ID: "p1", ReservationID: "r1"}}, nil)

	got, err := svc.ListByGuest(context.Background(), "g1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}
