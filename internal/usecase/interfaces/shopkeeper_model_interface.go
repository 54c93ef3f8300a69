package interfaces

import (
	"context"
	"polyforge/internal/domain/entities"
)

// IShopkeeperModel abstracts the remote language model acting as the store's
// AI shopkeeper (e.g. Gemini).
//
// Both calls surface every failure as an error; the use case layer turns
// errors into fallback values.
//
//go:generate mockgen -source=shopkeeper_model_interface.go -destination=mocks/mock_shopkeeper_model.go -package=mock_interfaces
type IShopkeeperModel interface {
	JudgeFreeRequest(ctx context.Context, p entities.Product, reason string) (entities.Judgment, error)
	ComposeReceiptMessage(ctx context.Context, p entities.Product, customerName string) (string, error)
}
