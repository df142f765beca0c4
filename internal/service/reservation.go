package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type paymentProcessor interface {
	ProcessPayment(ctx context.Context, reservationID string) (*domain.Payment, error)
}

type trustLedger interface {
	RecordReservationCompletion(ctx context.Context, guestID string) error
}

// ReservationService координирует создание, решение хозяина и оплату брони.
type ReservationService struct {
	reservationRepo ports.ReservationRepo
	caravanRepo     ports.CaravanRepo
	validator       *ReservationValidator
	factory         *ReservationFactory
	discount        domain.DiscountPolicy
	payments        paymentProcessor
	trust           trustLedger
	notifier        ports.Notifier
	locker          ports.Locker
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	caravanRepo ports.CaravanRepo,
	discount domain.DiscountPolicy,
	payments paymentProcessor,
	trust trustLedger,
	notifier ports.Notifier,
	locker ports.Locker,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		caravanRepo:     caravanRepo,
		validator:       NewReservationValidator(reservationRepo),
		factory:         NewReservationFactory(),
		discount:        discount,
		payments:        payments,
		trust:           trust,
		notifier:        notifier,
		locker:          locker,
		logger:          logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if input.CaravanID == "" || input.GuestID == "" || input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: caravan_id, guest_id, start_date and end_date are required", domain.ErrValidation)
	}

	start := domain.TruncateDate(input.StartDate)
	end := domain.TruncateDate(input.EndDate)

	caravan, err := s.caravanRepo.GetByID(ctx, input.CaravanID)
	if err != nil {
		return nil, fmt.Errorf("check caravan: %w", err)
	}

	if err = s.validator.ValidateDates(start, end); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, "caravan:"+caravan.ID)
	if err != nil {
		return nil, fmt.Errorf("lock caravan: %w", err)
	}
	defer unlock()

	if err = s.validator.CheckNoOverlap(ctx, caravan.ID, start, end); err != nil {
		return nil, err
	}

	days := domain.RentalDays(start, end)
	price := s.discount.Apply(days * caravan.PricePerDay)

	reservation := s.factory.New(caravan.ID, input.GuestID, start, end, price, domain.ReservationStatusPending)
	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("caravan_id", caravan.ID),
		logger.String("guest_id", input.GuestID),
		logger.Int64("total_price", price),
	)

	s.notifier.Notify(ctx, domain.Notification{
		Type:          domain.NotificationNewReservation,
		ReservationID: reservation.ID,
		UserID:        reservation.GuestID,
		OccurredAt:    time.Now().UTC(),
	})

	return reservation, nil
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id string, decision domain.Decision) (*domain.Reservation, error) {
	next, err := decision.TargetStatus()
	if err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if !reservation.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, reservation.Status, next)
	}

	if err = s.reservationRepo.UpdateStatus(ctx, id, reservation.Status, next); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("reservation status changed",
		logger.String("reservation_id", id),
		logger.String("from", string(reservation.Status)),
		logger.String("to", string(next)),
	)

	reservation.Status = next
	reservation.UpdatedAt = time.Now().UTC()

	s.notifier.Notify(ctx, domain.Notification{
		Type:          domain.NotificationStatusChange,
		ReservationID: id,
		UserID:        reservation.GuestID,
		NewStatus:     next,
		OccurredAt:    time.Now().UTC(),
	})

	return reservation, nil
}

func (s *ReservationService) ConfirmPayment(ctx context.Context, id string) (*domain.Reservation, *domain.Payment, error) {
	if id == "" {
		return nil, nil, fmt.Errorf("%w: reservation id is required", domain.ErrValidation)
	}

	payment, err := s.payments.ProcessPayment(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("process payment: %w", err)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			s.logger.Error("reservation missing after payment",
				logger.String("reservation_id", id),
				logger.String("payment_id", payment.ID),
			)
			return nil, nil, domain.ErrReservationVanished
		}
		return nil, nil, fmt.Errorf("reload reservation: %w", err)
	}

	// платёж уже проведён, поэтому ошибка начисления рейтинга не отменяет операцию
	if err = s.trust.RecordReservationCompletion(ctx, reservation.GuestID); err != nil {
		err = trustNotRecorded(err)
		s.logger.Error("failed to record reservation completion",
			logger.String("reservation_id", id),
			logger.String("guest_id", reservation.GuestID),
			logger.String("error", err.Error()),
		)
	}

	s.notifier.Notify(ctx, domain.Notification{
		Type:          domain.NotificationPaymentConfirmed,
		ReservationID: id,
		UserID:        reservation.GuestID,
		NewStatus:     reservation.Status,
		OccurredAt:    time.Now().UTC(),
	})

	return reservation, payment, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByGuest(ctx, guestID)
}

func (s *ReservationService) ListByHost(ctx context.Context, hostID string) ([]*domain.Reservation, error) {
	caravans, err := s.caravanRepo.ListByHost(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("list host caravans: %w", err)
	}
	if len(caravans) == 0 {
		return []*domain.Reservation{}, nil
	}

	ids := make([]string, 0, len(caravans))
	for _, c := range caravans {
		ids = append(ids, c.ID)
	}

	reservations, err := s.reservationRepo.ListByCaravanIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return reservations, nil
}

// trustNotRecorded помечает ошибку начисления рейтинга как внутреннюю,
// сохраняя исходную причину.
func trustNotRecorded(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrTrustNotRecorded, err)
}
