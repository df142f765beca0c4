package boltdb

import (
	"context"
	"slices"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/stpnv0/CaravanBooker/internal/domain"
)

type PaymentRepository struct {
	db *bolt.DB
}

func NewPaymentRepo(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db.bolt}
}

// Settle сохраняет платёж и подтверждает бронь в одной транзакции.
func (r *PaymentRepository) Settle(_ context.Context, p *domain.Payment) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		res, err := getReservation(tx, p.ReservationID)
		if err != nil {
			return err
		}
		if res.Status != domain.ReservationStatusAwaitingPayment {
			return domain.ErrNotAwaitingPayment
		}

		byResv := tx.Bucket(bucketPaymentsByResv)
		if byResv.Get([]byte(p.ReservationID)) != nil {
			return domain.ErrPaymentExists
		}

		res.Status = domain.ReservationStatusConfirmed
		res.UpdatedAt = time.Now().UTC()
		if err = putJSON(tx.Bucket(bucketReservations), res.ID, res); err != nil {
			return err
		}
		if err = putJSON(tx.Bucket(bucketPayments), p.ID, p); err != nil {
			return err
		}
		return byResv.Put([]byte(p.ReservationID), []byte(p.ID))
	})
}

func (r *PaymentRepository) GetByReservationID(_ context.Context, reservationID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketPaymentsByResv).Get([]byte(reservationID))
		if id == nil {
			return domain.ErrPaymentNotFound
		}
		ok, err := getJSON(tx.Bucket(bucketPayments), string(id), &p)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrPaymentNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PaymentRepository) List(_ context.Context) ([]*domain.Payment, error) {
	res := make([]*domain.Payment, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPayments)
		return b.ForEach(func(k, _ []byte) error {
			var p domain.Payment
			if _, err := getJSON(b, string(k), &p); err != nil {
				return err
			}
			res = append(res, &p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortByPaymentDateDesc(res)
	return res, nil
}

func (r *PaymentRepository) ListByReservationIDs(_ context.Context, reservationIDs []string) ([]*domain.Payment, error) {
	res := make([]*domain.Payment, 0)
	err := r.db.View(func(tx *bolt.Tx) error {
		byResv := tx.Bucket(bucketPaymentsByResv)
		payments := tx.Bucket(bucketPayments)
		for _, reservationID := range reservationIDs {
			id := byResv.Get([]byte(reservationID))
			if id == nil {
				continue
			}
			var p domain.Payment
			ok, err := getJSON(payments, string(id), &p)
			if err != nil {
				return err
			}
			if ok {
				res = append(res, &p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByPaymentDateDesc(res)
	return res, nil
}

func sortByPaymentDateDesc(res []*domain.Payment) {
	slices.SortFunc(res, func(a, b *domain.Payment) int {
		return b.PaymentDate.Compare(a.PaymentDate)
	})
}
