package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/stpnv0/CaravanBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PaymentService единственный создаёт платежи и переводит бронь в confirmed.
type PaymentService struct {
	paymentRepo     ports.PaymentRepo
	reservationRepo ports.ReservationRepo
	logger          logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	reservationRepo ports.ReservationRepo,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

func (s *PaymentService) ProcessPayment(ctx context.Context, reservationID string) (*domain.Payment, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if reservation.Status != domain.ReservationStatusAwaitingPayment {
		return nil, domain.ErrNotAwaitingPayment
	}

	payment := &domain.Payment{
		ID:            uuid.New().String(),
		ReservationID: reservation.ID,
		Amount:        reservation.TotalPrice,
		PaymentDate:   time.Now().UTC(),
		Status:        domain.PaymentStatusCompleted,
		TransactionID: "txn_" + uuid.New().String(),
	}

	// статус мог измениться после чтения, Settle проверяет его ещё раз
	if err = s.paymentRepo.Settle(ctx, payment); err != nil {
		return nil, fmt.Errorf("settle payment: %w", err)
	}

	s.logger.Info("payment completed",
		logger.String("payment_id", payment.ID),
		logger.String("reservation_id", reservation.ID),
		logger.String("transaction_id", payment.TransactionID),
		logger.Int64("amount", payment.Amount),
	)

	return payment, nil
}

func (s *PaymentService) GetByReservation(ctx context.Context, reservationID string) (*domain.Payment, error) {
	return s.paymentRepo.GetByReservationID(ctx, reservationID)
}

func (s *PaymentService) List(ctx context.Context) ([]*domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}

// ListByGuest собирает историю платежей гостя по его броням.
func (s *PaymentService) ListByGuest(ctx context.Context, guestID string) ([]*domain.Payment, error) {
	reservations, err := s.reservationRepo.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	if len(reservations) == 0 {
		return []*domain.Payment{}, nil
	}

	ids := make([]string, 0, len(reservations))
	for _, r := range reservations {
		ids = append(ids, r.ID)
	}

	payments, err := s.paymentRepo.ListByReservationIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}
