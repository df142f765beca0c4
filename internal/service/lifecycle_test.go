package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/lock"
	"github.com/stpnv0/CaravanBooker/internal/notification"
	"github.com/stpnv0/CaravanBooker/internal/repository/boltdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycle struct {
	users        *UserService
	caravans     *CaravanService
	reservations *ReservationService
	payments     *PaymentService
	reviews      *ReviewService
	hub          *notification.Hub
}

// newLifecycle собирает сервисы поверх настоящего BoltDB, как это делает app.
func newLifecycle(t *testing.T) *lifecycle {
	t.Helper()
	log := newTestLogger(t)

	db, err := boltdb.Open(filepath.Join(t.TempDir(), "caravans.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := boltdb.NewUserRepo(db)
	caravanRepo := boltdb.NewCaravanRepo(db)
	reservationRepo := boltdb.NewReservationRepo(db)
	paymentRepo := boltdb.NewPaymentRepo(db)
	reviewRepo := boltdb.NewReviewRepo(db)

	hub := notification.NewHub(16, 100, log)

	users := NewUserService(userRepo)
	payments := NewPaymentService(paymentRepo, reservationRepo, log)

	return &lifecycle{
		users:        users,
		caravans:     NewCaravanService(caravanRepo, userRepo),
		reservations: NewReservationService(reservationRepo, caravanRepo, domain.NoDiscount(), payments, users, hub, lock.NewLocal(), log),
		payments:     payments,
		reviews:      NewReviewService(reviewRepo, caravanRepo, userRepo, users, log),
		hub:          hub,
	}
}

func (l *lifecycle) seed(t *testing.T) (host, guest *domain.User, caravan *domain.Caravan) {
	t.Helper()
	ctx := context.Background()

	host, err := l.users.Create(ctx, domain.CreateUserInput{Username: "host"})
	require.NoError(t, err)
	guest, err = l.users.Create(ctx, domain.CreateUserInput{Username: "guest"})
	require.NoError(t, err)
	caravan, err = l.caravans.Create(ctx, domain.CreateCaravanInput{
		HostID: host.ID, Name: "Hymer", Capacity: 4, PricePerDay: 100,
	})
	require.NoError(t, err)

	return host, guest, caravan
}

type countingSubscriber struct {
	mu    sync.Mutex
	types []domain.NotificationType
}

func (s *countingSubscriber) Name() string { return "counting" }

func (s *countingSubscriber) Handle(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	s.types = append(s.types, n.Type)
	s.mu.Unlock()
	return nil
}

func (s *countingSubscriber) seen() []domain.NotificationType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.NotificationType(nil), s.types...)
}

func TestLifecycle_CreateApprovePay(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()
	_, guest, caravan := l.seed(t)

	sub := &countingSubscriber{}
	l.hub.Subscribe(sub)
	hubCtx, stop := context.WithCancel(ctx)
	defer stop()
	go l.hub.Start(hubCtx)

	res, err := l.reservations.Create(ctx, domain.CreateReservationInput{
		CaravanID: caravan.ID,
		GuestID:   guest.ID,
		StartDate: day("2025-01-01"),
		EndDate:   day("2025-01-05"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(400), res.TotalPrice)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)

	res, err = l.reservations.UpdateStatus(ctx, res.ID, domain.DecisionApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusAwaitingPayment, res.Status)

	res, payment, err := l.reservations.ConfirmPayment(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)
	assert.Equal(t, int64(400), payment.Amount)

	all, err := l.payments.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.PaymentStatusCompleted, all[0].Status)

	g, err := l.users.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, g.TrustScore)

	history := l.hub.History()
	require.Len(t, history, 3)
	assert.Equal(t, domain.NotificationNewReservation, history[0].Type)
	assert.Equal(t, domain.NotificationStatusChange, history[1].Type)
	assert.Equal(t, domain.NotificationPaymentConfirmed, history[2].Type)

	assert.Eventually(t, func() bool { return len(sub.seen()) == 3 }, time.Second, 10*time.Millisecond)

	_, _, err = l.reservations.ConfirmPayment(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotAwaitingPayment)
}

func TestLifecycle_UnknownGuestRejected(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()
	host, _, caravan := l.seed(t)

	_, err := l.reservations.Create(ctx, domain.CreateReservationInput{
		CaravanID: caravan.ID,
		GuestID:   "00000000-0000-0000-0000-000000000000",
		StartDate: day("2025-01-01"),
		EndDate:   day("2025-01-05"),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	hostRes, err := l.reservations.ListByHost(ctx, host.ID)
	require.NoError(t, err)
	assert.Empty(t, hostRes)
	assert.Empty(t, l.hub.History())
}

func TestLifecycle_OverlapAndOtherCaravan(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()
	host, guest, caravan := l.seed(t)

	input := domain.CreateReservationInput{
		CaravanID: caravan.ID,
		GuestID:   guest.ID,
		StartDate: day("2025-01-01"),
		EndDate:   day("2025-01-05"),
	}
	_, err := l.reservations.Create(ctx, input)
	require.NoError(t, err)

	input.StartDate, input.EndDate = day("2025-01-03"), day("2025-01-07")
	_, err = l.reservations.Create(ctx, input)
	assert.ErrorIs(t, err, domain.ErrReservationOverlap)

	other, err := l.caravans.Create(ctx, domain.CreateCaravanInput{
		HostID: host.ID, Name: "Knaus", Capacity: 2, PricePerDay: 80,
	})
	require.NoError(t, err)

	input.CaravanID = other.ID
	_, err = l.reservations.Create(ctx, input)
	require.NoError(t, err)

	hostRes, err := l.reservations.ListByHost(ctx, host.ID)
	require.NoError(t, err)
	assert.Len(t, hostRes, 2)

	guestHostRes, err := l.reservations.ListByHost(ctx, guest.ID)
	require.NoError(t, err)
	assert.Empty(t, guestHostRes)
}

func TestLifecycle_ConcurrentBookingsSingleWinner(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()
	_, guest, caravan := l.seed(t)

	const workers = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := l.reservations.Create(ctx, domain.CreateReservationInput{
				CaravanID: caravan.ID,
				GuestID:   guest.ID,
				StartDate: day("2025-06-01").AddDate(0, 0, i%3),
				EndDate:   day("2025-06-10"),
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrReservationOverlap):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
}

func TestLifecycle_ReviewAdjustsTrust(t *testing.T) {
	l := newLifecycle(t)
	ctx := context.Background()
	host, guest, caravan := l.seed(t)

	_, err := l.reviews.Create(ctx, domain.CreateReviewInput{CaravanID: caravan.ID, GuestID: guest.ID, Rating: 5})
	require.NoError(t, err)
	_, err = l.reviews.Create(ctx, domain.CreateReviewInput{CaravanID: caravan.ID, GuestID: guest.ID, Rating: 1})
	require.NoError(t, err)

	g, err := l.users.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, g.TrustScore)

	h, err := l.users.GetByID(ctx, host.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, h.TrustScore)

	reviews, err := l.reviews.ListByCaravan(ctx, caravan.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
