package boltdb

import (
	"context"
	"slices"
	"strings"

	bolt "github.com/boltdb/bolt"
	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type UserRepository struct {
	db *bolt.DB
}

func NewUserRepo(db *DB) *UserRepository {
	return &UserRepository{db: db.bolt}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		byName := tx.Bucket(bucketUsersByName)
		if byName.Get([]byte(user.Username)) != nil {
			return domain.ErrUsernameTaken
		}
		if err := putJSON(tx.Bucket(bucketUsers), user.ID, user); err != nil {
			return err
		}
		return byName.Put([]byte(user.Username), []byte(user.ID))
	})
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.View(func(tx *bolt.Tx) error {
		ok, err := getJSON(tx.Bucket(bucketUsers), id, &u)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	res := make([]*domain.User, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUsers).ForEach(func(k, _ []byte) error {
			var u domain.User
			if _, err := getJSON(tx.Bucket(bucketUsers), string(k), &u); err != nil {
				return err
			}
			res = append(res, &u)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(res, func(a, b *domain.User) int {
		return strings.Compare(a.Username, b.Username)
	})
	return res, nil
}

// AddTrustScore читает и пишет рейтинг в одной пишущей транзакции.
func (r *UserRepository) AddTrustScore(_ context.Context, id string, delta int) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketUsers)

		var u domain.User
		ok, err := getJSON(b, id, &u)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUserNotFound
		}

		u.TrustScore += delta
		return putJSON(b, id, &u)
	})
}
