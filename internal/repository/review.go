package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/CaravanBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	query := `INSERT INTO reviews (id, caravan_id, guest_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rev.ID, rev.CaravanID, rev.GuestID, rev.Rating, rev.Comment, rev.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolated {
			return domain.ErrCaravanNotFound
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) ListByCaravan(ctx context.Context, caravanID string) ([]*domain.Review, error) {
	query := `SELECT id, caravan_id, guest_id, rating, comment, created_at
			  FROM reviews
			  WHERE caravan_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, caravanID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Review, 0)
	for rows.Next() {
		var rev domain.Review
		if err = rows.Scan(&rev.ID, &rev.CaravanID, &rev.GuestID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rev)
	}

	return res, rows.Err()
}
