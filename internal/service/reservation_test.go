package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationMocks struct {
	reservations *mocks.MockReservationRepo
	caravans     *mocks.MockCaravanRepo
	payments     *mocks.MockPaymentRepo
	users        *mocks.MockUserRepo
	notifier     *mocks.MockNotifier
	locker       *mocks.MockLocker
}

func newReservationService(t *testing.T, discount domain.DiscountPolicy) (*ReservationService, *reservationMocks) {
	t.Helper()
	m := &reservationMocks{
		reservations: mocks.NewMockReservationRepo(t),
		caravans:     mocks.NewMockCaravanRepo(t),
		payments:     mocks.NewMockPaymentRepo(t),
		users:        mocks.NewMockUserRepo(t),
		notifier:     mocks.NewMockNotifier(t),
		locker:       mocks.NewMockLocker(t),
	}
	log := newTestLogger(t)

	svc := NewReservationService(
		m.reservations,
		m.caravans,
		discount,
		NewPaymentService(m.payments, m.reservations, log),
		NewUserService(m.users),
		m.notifier,
		m.locker,
		log,
	)
	return svc, m
}

func notificationOf(typ domain.NotificationType) interface{} {
	return mock.MatchedBy(func(n domain.Notification) bool { return n.Type == typ })
}

func validInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		CaravanID: "c1",
		GuestID:   "g1",
		StartDate: day("2025-01-01"),
		EndDate:   day("2025-01-05"),
	}
}

func testCaravan() *domain.Caravan {
	return &domain.Caravan{ID: "c1", HostID: "h1", PricePerDay: 100, Status: domain.CaravanStatusAvailable}
}

// --- Create ---

func TestReservationService_Create_Success(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	unlocked := false
	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(testCaravan(), nil)
	m.locker.EXPECT().Lock(mock.Anything, "caravan:c1").Return(func() { unlocked = true }, nil)
	m.reservations.EXPECT().FindOverlapping(mock.Anything, "c1", day("2025-01-01"), day("2025-01-05")).Return(nil, nil)
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().Notify(mock.Anything, notificationOf(domain.NotificationNewReservation)).Return()

	res, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, int64(400), res.TotalPrice)
	assert.Equal(t, "g1", res.GuestID)
	assert.True(t, unlocked)
}

func TestReservationService_Create_WithDiscount(t *testing.T) {
	pct, err := domain.PercentageDiscount(0.10)
	require.NoError(t, err)
	svc, m := newReservationService(t, pct)

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(testCaravan(), nil)
	m.locker.EXPECT().Lock(mock.Anything, "caravan:c1").Return(func() {}, nil)
	m.reservations.EXPECT().FindOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).Return(nil, nil)
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return()

	res, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(360), res.TotalPrice)
}

func TestReservationService_Create_Overlap(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	existing := &domain.Reservation{
		ID: "r0", CaravanID: "c1",
		StartDate: day("2025-01-03"), EndDate: day("2025-01-08"),
		Status: domain.ReservationStatusAwaitingPayment,
	}

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(testCaravan(), nil)
	m.locker.EXPECT().Lock(mock.Anything, "caravan:c1").Return(func() {}, nil)
	m.reservations.EXPECT().FindOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).
		Return([]*domain.Reservation{existing}, nil)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrReservationOverlap)
	assert.ErrorIs(t, err, domain.ErrConflict)
	m.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestReservationService_Create_StoreDetectsOverlap(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(testCaravan(), nil)
	m.locker.EXPECT().Lock(mock.Anything, "caravan:c1").Return(func() {}, nil)
	m.reservations.EXPECT().FindOverlapping(mock.Anything, "c1", mock.Anything, mock.Anything).Return(nil, nil)
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrReservationOverlap)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReservationService_Create_InvalidDates(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(testCaravan(), nil)

	input := validInput()
	input.EndDate = input.StartDate

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	m.locker.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything)
}

func TestReservationService_Create_MissingFields(t *testing.T) {
	svc, _ := newReservationService(t, domain.NoDiscount())

	input := validInput()
	input.GuestID = ""

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_CaravanNotFound(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCaravanNotFound)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Create_LockError(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	lockErr := errors.New("lock timeout")
	m.caravans.EXPECT().GetByID(mock.Anything, "c1").Return(testCaravan(), nil)
	m.locker.EXPECT().Lock(mock.Anything, "caravan:c1").Return(nil, lockErr)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, lockErr)
	m.reservations.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- UpdateStatus ---

func TestReservationService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		decision domain.Decision
		want     domain.ReservationStatus
	}{
		{"approve", domain.DecisionApproved, domain.ReservationStatusAwaitingPayment},
		{"reject", domain.DecisionRejected, domain.ReservationStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReservationService(t, domain.NoDiscount())

			m.reservations.EXPECT().GetByID(mock.Anything, "r1").
				Return(&domain.Reservation{ID: "r1", GuestID: "g1", Status: domain.ReservationStatusPending}, nil)
			m.reservations.EXPECT().UpdateStatus(mock.Anything, "r1", domain.ReservationStatusPending, tt.want).Return(nil)
			m.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
				return n.Type == domain.NotificationStatusChange && n.NewStatus == tt.want && n.UserID == "g1"
			})).Return()

			res, err := svc.UpdateStatus(context.Background(), "r1", tt.decision)

			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Status)
		})
	}
}

func TestReservationService_UpdateStatus_InvalidDecision(t *testing.T) {
	svc, _ := newReservationService(t, domain.NoDiscount())

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.Decision("maybe"))

	assert.ErrorIs(t, err, domain.ErrInvalidDecision)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_UpdateStatus_NotFound(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.DecisionApproved)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_UpdateStatus_NotPending(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.reservations.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}, nil)

	_, err := svc.UpdateStatus(context.Background(), "r1", domain.DecisionRejected)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	m.reservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ConfirmPayment ---

func TestReservationService_ConfirmPayment_Success(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	awaiting := &domain.Reservation{ID: "r1", GuestID: "g1", TotalPrice: 400, Status: domain.ReservationStatusAwaitingPayment}
	confirmed := &domain.Reservation{ID: "r1", GuestID: "g1", TotalPrice: 400, Status: domain.ReservationStatusConfirmed}

	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(awaiting, nil).Once()
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil).Once()
	m.payments.EXPECT().Settle(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.ReservationID == "r1" && p.Amount == 400 && p.Status == domain.PaymentStatusCompleted
	})).Return(nil)
	m.users.EXPECT().AddTrustScore(mock.Anything, "g1", 10).Return(nil)
	m.notifier.EXPECT().Notify(mock.Anything, notificationOf(domain.NotificationPaymentConfirmed)).Return()

	res, payment, err := svc.ConfirmPayment(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)
	assert.Equal(t, int64(400), payment.Amount)
	assert.True(t, strings.HasPrefix(payment.TransactionID, "txn_"))
}

func TestReservationService_ConfirmPayment_NotAwaiting(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.ReservationStatusPending,
		domain.ReservationStatusRejected,
		domain.ReservationStatusConfirmed,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc, m := newReservationService(t, domain.NoDiscount())

			m.reservations.EXPECT().GetByID(mock.Anything, "r1").
				Return(&domain.Reservation{ID: "r1", Status: status}, nil)

			_, _, err := svc.ConfirmPayment(context.Background(), "r1")

			assert.ErrorIs(t, err, domain.ErrNotAwaitingPayment)
			assert.ErrorIs(t, err, domain.ErrValidation)
			m.payments.AssertNotCalled(t, "Settle", mock.Anything, mock.Anything)
		})
	}
}

func TestReservationService_ConfirmPayment_EmptyID(t *testing.T) {
	svc, _ := newReservationService(t, domain.NoDiscount())

	_, _, err := svc.ConfirmPayment(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ConfirmPayment_Vanished(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.reservations.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusAwaitingPayment}, nil).Once()
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(nil, domain.ErrReservationNotFound).Once()
	m.payments.EXPECT().Settle(mock.Anything, mock.Anything).Return(nil)

	_, _, err := svc.ConfirmPayment(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrReservationVanished)
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestReservationService_ConfirmPayment_TrustFailureIsNotFatal(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.reservations.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", GuestID: "g1", Status: domain.ReservationStatusAwaitingPayment}, nil).Once()
	m.reservations.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", GuestID: "g1", Status: domain.ReservationStatusConfirmed}, nil).Once()
	m.payments.EXPECT().Settle(mock.Anything, mock.Anything).Return(nil)
	m.users.EXPECT().AddTrustScore(mock.Anything, "g1", 10).Return(domain.ErrUserNotFound)
	m.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return()

	res, _, err := svc.ConfirmPayment(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)
}

func TestTrustNotRecorded_KeepsKindAndCause(t *testing.T) {
	err := trustNotRecorded(domain.ErrUserNotFound)

	assert.ErrorIs(t, err, domain.ErrTrustNotRecorded)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Contains(t, err.Error(), "trust score was not recorded")
}

// --- Listing ---

func TestReservationService_ListByHost_NoCaravans(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.caravans.EXPECT().ListByHost(mock.Anything, "h1").Return([]*domain.Caravan{}, nil)

	res, err := svc.ListByHost(context.Background(), "h1")

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
	m.reservations.AssertNotCalled(t, "ListByCaravanIDs", mock.Anything, mock.Anything)
}

func TestReservationService_ListByHost(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.caravans.EXPECT().ListByHost(mock.Anything, "h1").
		Return([]*domain.Caravan{{ID: "c1"}, {ID: "c2"}}, nil)
	m.reservations.EXPECT().ListByCaravanIDs(mock.Anything, []string{"c1", "c2"}).
		Return([]*domain.Reservation{{ID: "r1"}, {ID: "r2"}}, nil)

	res, err := svc.ListByHost(context.Background(), "h1")

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestReservationService_ListByGuest(t *testing.T) {
	svc, m := newReservationService(t, domain.NoDiscount())

	m.reservations.EXPECT().ListByGuest(mock.Anything, "g1").Return([]*domain.Reservation{{ID: "r1"}}, nil)

	res, err := svc.ListByGuest(context.Background(), "g1")

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
