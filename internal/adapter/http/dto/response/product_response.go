package response

import "polyforge/internal/domain/entities"

// ProductResponse never exposes the drawn price of a hidden-price product.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price,omitempty"`
	DisplayPrice string `json:"display_price"`
	FilamentType string `json:"filament_type"`
	PriceHidden  bool   `json:"price_hidden"`
}

func FromProduct(p entities.Product) ProductResponse {
	res := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		DisplayPrice: p.DisplayPrice(),
		FilamentType: p.FilamentType,
		PriceHidden:  p.PriceHidden,
	}
	if !p.PriceHidden {
		res.Price = p.Price.StringFixed(2)
	}
	return res
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
