// Package boltdb хранит данные сервиса в одном файле BoltDB.
//
// Каждая сущность лежит в своём бакете в виде JSON по ключу id. Вторичные
// индексы хранятся в отдельных бакетах с ключами вида "<родитель>/<id>", по которым
// идёт поиск по префиксу. Все записи выполняются в db.Update, а BoltDB
// допускает только одну пишущую транзакцию, поэтому проверка пересечения
// и вставка брони атомарны.
package boltdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"
)

var (
	bucketUsers                 = []byte("users")
	bucketUsersByName           = []byte("users_by_name")
	bucketCaravans              = []byte("caravans")
	bucketCaravansByHost        = []byte("caravans_by_host")
	bucketReservations          = []byte("reservations")
	bucketReservationsByCaravan = []byte("reservations_by_caravan")
	bucketReservationsByGuest   = []byte("reservations_by_guest")
	bucketPayments              = []byte("payments")
	bucketPaymentsByResv        = []byte("payments_by_reservation")
	bucketReviews               = []byte("reviews")
	bucketReviewsByCaravan      = []byte("reviews_by_caravan")
)

var allBuckets = [][]byte{
	bucketUsers, bucketUsersByName,
	bucketCaravans, bucketCaravansByHost,
	bucketReservations, bucketReservationsByCaravan, bucketReservationsByGuest,
	bucketPayments, bucketPaymentsByResv,
	bucketReviews, bucketReviewsByCaravan,
}

type DB struct {
	bolt *bolt.DB
}

// Open открывает (или создаёт) файл базы и все бакеты.
func Open(path string, timeout time.Duration) (*DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{bolt: db}, nil
}

func (d *DB) Close() error {
	return d.bolt.Close()
}

func indexKey(parent, id string) []byte {
	return []byte(parent + "/" + id)
}

func getJSON(b *bolt.Bucket, id string, v any) (bool, error) {
	raw := b.Get([]byte(id))
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", id, err)
	}
	return true, nil
}

func putJSON(b *bolt.Bucket, id string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", id, err)
	}
	return b.Put([]byte(id), raw)
}

// childIDs возвращает id из индексного бакета по префиксу "<parent>/".
func childIDs(b *bolt.Bucket, parent string) []string {
	prefix := []byte(parent + "/")
	var ids []string

	c := b.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		ids = append(ids, string(k[len(prefix):]))
	}

	return ids
}
