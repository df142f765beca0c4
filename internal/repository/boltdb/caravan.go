package boltdb

import (
	"context"
	"slices"

	bolt "github.com/boltdb/bolt"
	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type CaravanRepository struct {
	db *bolt.DB
}

func NewCaravanRepo(db *DB) *CaravanRepository {
	return &CaravanRepository{db: db.bolt}
}

func (r *CaravanRepository) Create(_ context.Context, c *domain.Caravan) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketUsers).Get([]byte(c.HostID)) == nil {
			return domain.ErrUserNotFound
		}
		if err := putJSON(tx.Bucket(bucketCaravans), c.ID, c); err != nil {
			return err
		}
		return tx.Bucket(bucketCaravansByHost).Put(indexKey(c.HostID, c.ID), []byte(c.ID))
	})
}

func (r *CaravanRepository) GetByID(_ context.Context, id string) (*domain.Caravan, error) {
	var c domain.Caravan
	err := r.db.View(func(tx *bolt.Tx) error {
		ok, err := getJSON(tx.Bucket(bucketCaravans), id, &c)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCaravanNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CaravanRepository) ListByHost(_ context.Context, hostID string) ([]*domain.Caravan, error) {
	res := make([]*domain.Caravan, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		caravans := tx.Bucket(bucketCaravans)
		for _, id := range childIDs(tx.Bucket(bucketCaravansByHost), hostID) {
			var c domain.Caravan
			ok, err := getJSON(caravans, id, &c)
			if err != nil {
				return err
			}
			if ok {
				res = append(res, &c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(res, func(a, b *domain.Caravan) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return res, nil
}

func (r *CaravanRepository) List(_ context.Context) ([]*domain.Caravan, error) {
	res := make([]*domain.Caravan, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCaravans).ForEach(func(k, _ []byte) error {
			var c domain.Caravan
			if _, err := getJSON(tx.Bucket(bucketCaravans), string(k), &c); err != nil {
				return err
			}
			res = append(res, &c)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(res, func(a, b *domain.Caravan) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return res, nil
}
