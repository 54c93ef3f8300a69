package usecase

import (
	"context"
	"errors"
	"strings"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

type ICatalogUseCase interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}
