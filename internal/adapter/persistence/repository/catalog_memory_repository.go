package repository

import (
	"context"
	"math/rand/v2"

	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	customFidgetMinPrice = 5
	customFidgetMaxPrice = 30
)

// DefaultProducts returns the storefront catalog. pricer draws the price of
// the custom fidget toy in [5, 30]; nil uses math/rand.
func DefaultProducts(pricer func() int) []entities.Product {
	if pricer == nil {
		pricer = func() int {
			return customFidgetMinPrice + rand.IntN(customFidgetMaxPrice-customFidgetMinPrice+1)
		}
	}
	five := decimal.NewFromInt(5)

	return []entities.Product{
		{
			ID:           "1",
			Name:         "Fake iPhone 17 Pro",
			Description:  "1:1 Scale non-functional display model. Features the new camera layout design. Perfect for case makers or pranks.",
			Price:        five,
			FilamentType: "PLA",
		},
		{
			ID:           "2",
			Name:         "Butterfly Knife Trainer",
			Description:  "Safe, blunt-blade balisong trainer. Smooth bearing action for practicing tricks. NOT a weapon.",
			Price:        five,
			FilamentType: "PLA",
		},
		{
			ID:           "3",
			Name:         "Custom Phone Case",
			Description:  "Rugged aesthetic case with honeycomb impact structure. Fits most modern phones.",
			Price:        five,
			FilamentType: "PLA",
		},
		{
			ID:           "4",
			Name:         "Sim Gear Shifter",
			Description:  "Realistic H-pattern shifter knob and mechanism housing for sim racing setups.",
			Price:        five,
			FilamentType: "PLA",
		},
		{
			ID:           "5",
			Name:         "Fidget Toy (Custom)",
			Description:  "Any fidget model you want. Please specify the exact model name (e.g. Infinity Cube, Gear Bearing) in the notes.",
			Price:        decimal.NewFromInt(int64(pricer())),
			FilamentType: "PLA",
			PriceHidden:  true,
		},
	}
}

// CatalogMemoryRepository serves a fixed product list. It is read-only, so it
// needs no locking.
type CatalogMemoryRepository struct {
	products []entities.Product
	byID     map[string]entities.Product
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

func NewCatalogMemoryRepository(products []entities.Product) *CatalogMemoryRepository {
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogMemoryRepository{products: products, byID: byID}
}

func (r *CatalogMemoryRepository) List(_ context.Context) ([]entities.Product, error) {
	out := make([]entities.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *CatalogMemoryRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	return r.byID[id], nil
}
