package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, caravan_id, guest_id, start_date, end_date, status, total_price, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем караван, чтобы проверка пересечения и вставка шли последовательно
	lockQuery := `SELECT id FROM caravans WHERE id = $1 FOR UPDATE`
	var caravanID string
	if err = tx.QueryRowContext(ctx, lockQuery, res.CaravanID).Scan(&caravanID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCaravanNotFound
		}
		return fmt.Errorf("lock caravan: %w", err)
	}

	overlapQuery := `SELECT COUNT(*) FROM reservations
					 WHERE caravan_id = $1
					   AND status = ANY($2)
					   AND start_date < $4
					   AND end_date > $3`
	var overlapping int
	if err = tx.QueryRowContext(
		ctx, overlapQuery, res.CaravanID,
		activeStatuses(), res.StartDate, res.EndDate,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping: %w", err)
	}
	if overlapping > 0 {
		return domain.ErrReservationOverlap
	}

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query,
		res.ID, res.CaravanID, res.GuestID, res.StartDate, res.EndDate,
		res.Status, res.TotalPrice, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return domain.ErrReservationOverlap
			case pgForeignKeyViolated:
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) error {
	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	// Без повторов: повтор уже применённого CAS вернул бы ложный отказ перехода
	result, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if n == 0 {
		// Определяем причину: брони нет или статус уже сменился
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: status is no longer %s", domain.ErrInvalidTransition, from)
	}

	return nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE guest_id = $1
			  ORDER BY start_date DESC`

	return r.list(ctx, query, guestID)
}

func (r *ReservationRepository) ListByCaravanIDs(ctx context.Context, caravanIDs []string) ([]*domain.Reservation, error) {
	if len(caravanIDs) == 0 {
		return []*domain.Reservation{}, nil
	}

	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE caravan_id = ANY($1)
			  ORDER BY start_date DESC`

	return r.list(ctx, query, pq.Array(caravanIDs))
}

func (r *ReservationRepository) FindOverlapping(
	ctx context.Context,
	caravanID string,
	start, end time.Time,
) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE caravan_id = $1
			    AND status = ANY($2)
			    AND start_date < $4
			    AND end_date > $3`

	return r.list(ctx, query, caravanID, activeStatuses(), start, end)
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Reservation, 0)
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

func scanReservation(s scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := s.Scan(
		&res.ID, &res.CaravanID, &res.GuestID, &res.StartDate, &res.EndDate,
		&res.Status, &res.TotalPrice, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	res.StartDate = res.StartDate.UTC()
	res.EndDate = res.EndDate.UTC()
	return &res, nil
}
