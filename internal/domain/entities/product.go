package entities

import "github.com/shopspring/decimal"

// Product is a catalog item. Products are defined once at startup and never
// change while the process runs.
//
// PriceHidden marks items whose price is drawn at startup and shown as "€???"
// on the storefront; checkout still charges Price.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	FilamentType string          `json:"filament_type"`
	PriceHidden  bool            `json:"price_hidden"`
}

// DisplayPrice is the price label shown on the storefront.
func (p Product) DisplayPrice() string {
	if p.PriceHidden {
		return "€???"
	}
	return FormatEuro(p.Price)
}

// FormatEuro renders an amount as euros with two decimals.
func FormatEuro(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}
