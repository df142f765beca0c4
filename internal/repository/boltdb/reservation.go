package boltdb

import (
	"context"
	"fmt"
	"slices"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type ReservationRepository struct {
	db *bolt.DB
}

func NewReservationRepo(db *DB) *ReservationRepository {
	return &ReservationRepository{db: db.bolt}
}

func (r *ReservationRepository) Create(_ context.Context, res *domain.Reservation) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketCaravans).Get([]byte(res.CaravanID)) == nil {
			return domain.ErrCaravanNotFound
		}
		if tx.Bucket(bucketUsers).Get([]byte(res.GuestID)) == nil {
			return domain.ErrUserNotFound
		}

		overlapping, err := overlappingIn(tx, res.CaravanID, res.StartDate, res.EndDate)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return domain.ErrReservationOverlap
		}

		if err = putJSON(tx.Bucket(bucketReservations), res.ID, res); err != nil {
			return err
		}
		if err = tx.Bucket(bucketReservationsByCaravan).Put(indexKey(res.CaravanID, res.ID), []byte(res.ID)); err != nil {
			return err
		}
		return tx.Bucket(bucketReservationsByGuest).Put(indexKey(res.GuestID, res.ID), []byte(res.ID))
	})
}

func (r *ReservationRepository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	var res *domain.Reservation
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		res, err = getReservation(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *ReservationRepository) UpdateStatus(_ context.Context, id string, from, to domain.ReservationStatus) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		res, err := getReservation(tx, id)
		if err != nil {
			return err
		}
		if res.Status != from {
			return fmt.Errorf("%w: status is no longer %s", domain.ErrInvalidTransition, from)
		}

		res.Status = to
		res.UpdatedAt = time.Now().UTC()
		return putJSON(tx.Bucket(bucketReservations), id, res)
	})
}

func (r *ReservationRepository) ListByGuest(_ context.Context, guestID string) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		res, err = reservationsByIndex(tx, bucketReservationsByGuest, guestID)
		return err
	})
	if err != nil {
		return nil, err
	}

	sortByStartDesc(res)
	return res, nil
}

func (r *ReservationRepository) ListByCaravanIDs(_ context.Context, caravanIDs []string) ([]*domain.Reservation, error) {
	res := make([]*domain.Reservation, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		for _, caravanID := range caravanIDs {
			items, err := reservationsByIndex(tx, bucketReservationsByCaravan, caravanID)
			if err != nil {
				return err
			}
			res = append(res, items...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByStartDesc(res)
	return res, nil
}

func (r *ReservationRepository) FindOverlapping(
	_ context.Context,
	caravanID string,
	start, end time.Time,
) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		res, err = overlappingIn(tx, caravanID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func getReservation(tx *bolt.Tx, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	ok, err := getJSON(tx.Bucket(bucketReservations), id, &res)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return &res, nil
}

func reservationsByIndex(tx *bolt.Tx, index []byte, parent string) ([]*domain.Reservation, error) {
	res := make([]*domain.Reservation, 0)
	for _, id := range childIDs(tx.Bucket(index), parent) {
		item, err := getReservation(tx, id)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

// overlappingIn возвращает активные брони каравана, пересекающиеся с [start, end).
func overlappingIn(tx *bolt.Tx, caravanID string, start, end time.Time) ([]*domain.Reservation, error) {
	all, err := reservationsByIndex(tx, bucketReservationsByCaravan, caravanID)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Reservation, 0)
	for _, item := range all {
		if item.Status.IsActive() && item.Overlaps(start, end) {
			res = append(res, item)
		}
	}
	return res, nil
}

func sortByStartDesc(res []*domain.Reservation) {
	slices.SortFunc(res, func(a, b *domain.Reservation) int {
		return b.StartDate.Compare(a.StartDate)
	})
}
