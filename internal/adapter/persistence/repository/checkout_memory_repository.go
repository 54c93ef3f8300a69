package repository

import (
	"context"
	"sync"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"
)

// CheckoutMemoryRepository keeps open checkouts for the lifetime of the
// process.
type CheckoutMemoryRepository struct {
	mu        sync.Mutex
	checkouts map[string]entities.Checkout
}

var _ interfaces.ICheckoutRepository = (*CheckoutMemoryRepository)(nil)

func NewCheckoutMemoryRepository() *CheckoutMemoryRepository {
	return &CheckoutMemoryRepository{checkouts: make(map[string]entities.Checkout)}
}

func (r *CheckoutMemoryRepository) Create(_ context.Context, c entities.Checkout) (entities.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkouts[c.ID] = c
	return c, nil
}

func (r *CheckoutMemoryRepository) GetByID(_ context.Context, id string) (entities.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.checkouts[id], nil
}

func (r *CheckoutMemoryRepository) Update(_ context.Context, c entities.Checkout, expected entities.CheckoutStep) (entities.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.checkouts[c.ID]
	if !ok {
		return entities.Checkout{}, nil
	}
	if current.Step != expected {
		return current, interfaces.ErrCheckoutStepConflict
	}
	r.checkouts[c.ID] = c
	return c, nil
}
