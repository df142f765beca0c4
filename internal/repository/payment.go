package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const paymentColumns = `id, reservation_id, amount, payment_date, status, transaction_id`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PaymentRepository) Settle(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Атомарно проверяем статус и подтверждаем бронь
	confirmQuery := `UPDATE reservations
					 SET status = $3, updated_at = now()
					 WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(
		ctx, confirmQuery, p.ReservationID,
		domain.ReservationStatusAwaitingPayment, domain.ReservationStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("confirm reservation: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if n == 0 {
		var status string
		checkQuery := `SELECT status FROM reservations WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, p.ReservationID).Scan(&status); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrReservationNotFound
			}
			return fmt.Errorf("check reservation status: %w", scanErr)
		}
		return domain.ErrNotAwaitingPayment
	}

	query := `INSERT INTO payments (` + paymentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query,
		p.ID, p.ReservationID, p.Amount, p.PaymentDate, p.Status, p.TransactionID,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrPaymentExists
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	return tx.Commit()
}

func (r *PaymentRepository) GetByReservationID(ctx context.Context, reservationID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE reservation_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC`

	return r.list(ctx, query)
}

func (r *PaymentRepository) ListByReservationIDs(ctx context.Context, reservationIDs []string) ([]*domain.Payment, error) {
	if len(reservationIDs) == 0 {
		return []*domain.Payment{}, nil
	}

	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE reservation_id = ANY($1)
			  ORDER BY payment_date DESC`

	return r.list(ctx, query, pq.Array(reservationIDs))
}

func (r *PaymentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Payment, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func scanPayment(s scanner) (*domain.Payment, error) {
	var p domain.Payment
	if err := s.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.PaymentDate, &p.Status, &p.TransactionID); err != nil {
		return nil, err
	}
	return &p, nil
}
