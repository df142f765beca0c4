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

const caravanColumns = `id, host_id, name, description, location, capacity, price_per_day, status, created_at`

type CaravanRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCaravanRepo(db *dbpg.DB) *CaravanRepository {
	return &CaravanRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CaravanRepository) Create(ctx context.Context, c *domain.Caravan) error {
	query := `INSERT INTO caravans (` + caravanColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.HostID, c.Name, c.Description, c.Location,
		c.Capacity, c.PricePerDay, c.Status, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolated {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert caravan: %w", err)
	}

	return nil
}

func (r *CaravanRepository) GetByID(ctx context.Context, id string) (*domain.Caravan, error) {
	query := `SELECT ` + caravanColumns + ` FROM caravans WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get caravan: %w", err)
	}

	c, err := scanCaravan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCaravanNotFound
		}
		return nil, fmt.Errorf("scan caravan: %w", err)
	}

	return c, nil
}

func (r *CaravanRepository) ListByHost(ctx context.Context, hostID string) ([]*domain.Caravan, error) {
	query := `SELECT ` + caravanColumns + `
			  FROM caravans
			  WHERE host_id=$1
			  ORDER BY created_at`

	return r.list(ctx, query, hostID)
}

func (r *CaravanRepository) List(ctx context.Context) ([]*domain.Caravan, error) {
	query := `SELECT ` + caravanColumns + `
			  FROM caravans
			  ORDER BY created_at DESC`

	return r.list(ctx, query)
}

func (r *CaravanRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Caravan, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list caravans: %w", err)
	}
	defer rows.Close()

	var res []*domain.Caravan
	for rows.Next() {
		c, err := scanCaravan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan caravan: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCaravan(s scanner) (*domain.Caravan, error) {
	var c domain.Caravan
	err := s.Scan(
		&c.ID, &c.HostID, &c.Name, &c.Description, &c.Location,
		&c.Capacity, &c.PricePerDay, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
