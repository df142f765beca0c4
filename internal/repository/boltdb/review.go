package boltdb

import (
	"context"
	"slices"

	bolt "github.com/boltdb/bolt"
	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type ReviewRepository struct {
	db *bolt.DB
}

func NewReviewRepo(db *DB) *ReviewRepository {
	return &ReviewRepository{db: db.bolt}
}

func (r *ReviewRepository) Create(_ context.Context, rev *domain.Review) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketCaravans).Get([]byte(rev.CaravanID)) == nil {
			return domain.ErrCaravanNotFound
		}
		if tx.Bucket(bucketUsers).Get([]byte(rev.GuestID)) == nil {
			return domain.ErrUserNotFound
		}
		if err := putJSON(tx.Bucket(bucketReviews), rev.ID, rev); err != nil {
			return err
		}
		return tx.Bucket(bucketReviewsByCaravan).Put(indexKey(rev.CaravanID, rev.ID), []byte(rev.ID))
	})
}

func (r *ReviewRepository) ListByCaravan(_ context.Context, caravanID string) ([]*domain.Review, error) {
	res := make([]*domain.Review, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		reviews := tx.Bucket(bucketReviews)
		for _, id := range childIDs(tx.Bucket(bucketReviewsByCaravan), caravanID) {
			var rev domain.Review
			ok, err := getJSON(reviews, id, &rev)
			if err != nil {
				return err
			}
			if ok {
				res = append(res, &rev)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(res, func(a, b *domain.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return res, nil
}
