package repository

import (
	"context"
	"sync"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"
)

// OrderMemoryLedger is the default ledger: an append-only slice that lives as
// long as the process. Orders are kept in insertion order; List reverses it.
type OrderMemoryLedger struct {
	mu     sync.RWMutex
	orders []entities.Order
	byID   map[string]int
}

var _ interfaces.IOrderLedger = (*OrderMemoryLedger)(nil)

func NewOrderMemoryLedger() *OrderMemoryLedger {
	return &OrderMemoryLedger{byID: make(map[string]int)}
}

func (l *OrderMemoryLedger) Append(_ context.Context, o entities.Order) (entities.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byID[o.ID]; exists {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	l.byID[o.ID] = len(l.orders)
	l.orders = append(l.orders, o)
	return o, nil
}

func (l *OrderMemoryLedger) GetByID(_ context.Context, id string) (entities.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.byID[id]
	if !ok {
		return entities.Order{}, nil
	}
	return l.orders[i], nil
}

func (l *OrderMemoryLedger) List(_ context.Context) ([]entities.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entities.Order, 0, len(l.orders))
	for i := len(l.orders) - 1; i >= 0; i-- {
		out = append(out, l.orders[i])
	}
	return out, nil
}
