package interfaces

import (
	"context"
	"errors"
	"polyforge/internal/domain/entities"
)

var ErrCheckoutStepConflict = errors.New("checkout step changed concurrently")

// ICheckoutRepository keeps open checkouts.
//
// Update only writes when the stored checkout is still at expected; otherwise
// it returns ErrCheckoutStepConflict. This is what keeps two submits of the
// same checkout from both reaching PROCESSING.
type ICheckoutRepository interface {
	Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error)
	GetByID(ctx context.Context, id string) (entities.Checkout, error)
	Update(ctx context.Context, c entities.Checkout, expected entities.CheckoutStep) (entities.Checkout, error)
}
