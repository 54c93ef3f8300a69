package interfaces

import (
	"context"
	"polyforge/internal/domain/entities"
)

// ICatalogRepository exposes the fixed product catalog.
//
// GetByID returns a zero Product (empty ID) when the id is unknown.
type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
