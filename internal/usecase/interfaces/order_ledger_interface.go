package interfaces

import (
	"context"
	"errors"
	"polyforge/internal/domain/entities"
)

var ErrOrderAlreadyExists = errors.New("order already exists")

// IOrderLedger is the append-only list of completed orders.
//
// Backends:
//   - memory (default): lives as long as the process
//   - dynamodb: PK id
//   - bolt: single file, one bucket keyed by id
//
// GetByID returns a zero Order (empty ID) when the id is unknown.
// List returns the newest order first.
//
//go:generate mockgen -source=order_ledger_interface.go -destination=mocks/mock_order_ledger.go -package=mock_interfaces
type IOrderLedger interface {
	Append(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
