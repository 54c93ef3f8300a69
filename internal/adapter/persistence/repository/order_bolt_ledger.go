package repository

import (
	"context"
	"encoding/json"
	"time"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"

	bolt "github.com/boltdb/bolt"
)

const ordersBucket = "orders"

// OrderBoltLedger keeps the ledger in a single BoltDB file, one JSON value per
// order keyed by id. Useful when orders should survive a restart without a
// database server.
type OrderBoltLedger struct {
	db *bolt.DB
}

var _ interfaces.IOrderLedger = (*OrderBoltLedger)(nil)

// NewOrderBoltLedger opens (or creates) the database at path and ensures the
// orders bucket exists.
func NewOrderBoltLedger(path string) (*OrderBoltLedger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(ordersBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &OrderBoltLedger{db: db}, nil
}

// Close releases the database file lock.
func (l *OrderBoltLedger) Close() error {
	return l.db.Close()
}

func (l *OrderBoltLedger) Append(_ context.Context, o entities.Order) (entities.Order, error) {
	err := l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(ordersBucket))
		if b.Get([]byte(o.ID)) != nil {
			return interfaces.ErrOrderAlreadyExists
		}
		data, err := json.Marshal(o)
		if err != nil {
			return err
		}
		return b.Put([]byte(o.ID), data)
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (l *OrderBoltLedger) GetByID(_ context.Context, id string) (entities.Order, error) {
	var o entities.Order
	err := l.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(ordersBucket)).Get([]byte(id))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &o)
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (l *OrderBoltLedger) List(_ context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ordersBucket)).ForEach(func(_, v []byte) error {
			var o entities.Order
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			orders = append(orders, o)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}
