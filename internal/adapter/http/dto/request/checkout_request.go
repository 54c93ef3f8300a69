package request

import (
	"polyforge/internal/domain/entities"
	"strings"
)

type CheckoutStartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func (r CheckoutStartRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

type CheckoutMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// ResolveMethod accepts the method in any case ("cash", "ask_for_free").
func (r CheckoutMethodRequest) ResolveMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.Method)))
}

// CheckoutSubmitRequest carries the checkout form. Justification is only
// read for ASK_FOR_FREE.
type CheckoutSubmitRequest struct {
	CustomerName  string `json:"customer_name"`
	Notes         string `json:"notes"`
	Justification string `json:"justification"`
}

func (r CheckoutSubmitRequest) ToForm() entities.CheckoutForm {
	return entities.CheckoutForm{
		CustomerName:  r.CustomerName,
		Notes:         r.Notes,
		Justification: r.Justification,
	}
}
