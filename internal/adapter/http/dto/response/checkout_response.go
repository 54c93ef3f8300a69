package response

import (
	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase"
	"time"
)

type JudgmentResponse struct {
	Approved     bool   `json:"approved"`
	Reason       string `json:"reason"`
	WittyComment string `json:"witty_comment"`
	Source       string `json:"source,omitempty"`
}

type CheckoutResponse struct {
	CheckoutID        string            `json:"checkout_id"`
	ProductID         string            `json:"product_id"`
	Step              string            `json:"step"`
	Method            string            `json:"method,omitempty"`
	CustomerName      string            `json:"customer_name,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	ProcessingMessage string            `json:"processing_message,omitempty"`
	OrderID           string            `json:"order_id,omitempty"`
	LastDenial        *JudgmentResponse `json:"last_denial,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func FromCheckout(c entities.Checkout) CheckoutResponse {
	res := CheckoutResponse{
		CheckoutID:        c.ID,
		ProductID:         c.ProductID,
		Step:              string(c.Step),
		Method:            string(c.Method),
		CustomerName:      c.CustomerName,
		Notes:             c.Notes,
		ProcessingMessage: c.ProcessingMessage,
		OrderID:           c.OrderID,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.LastDenial != nil {
		res.LastDenial = &JudgmentResponse{
			Approved:     c.LastDenial.Approved,
			Reason:       c.LastDenial.Reason,
			WittyComment: c.LastDenial.WittyComment,
		}
	}
	return res
}

// CheckoutResultResponse is returned by submit. Order and the receipt links
// are set when status is COMPLETED; a DENIED result carries only the judgment.
type CheckoutResultResponse struct {
	Status        string            `json:"status"`
	Checkout      CheckoutResponse  `json:"checkout"`
	Order         *OrderResponse    `json:"order,omitempty"`
	Judgment      *JudgmentResponse `json:"judgment,omitempty"`
	MessageSource string            `json:"message_source,omitempty"`
	ReceiptURL    string            `json:"receipt_url,omitempty"`
	PrintURL      string            `json:"print_url,omitempty"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResultResponse {
	res := CheckoutResultResponse{
		Status:   string(r.Status),
		Checkout: FromCheckout(r.Checkout),
	}
	if r.Judgment != nil {
		res.Judgment = &JudgmentResponse{
			Approved:     r.Judgment.Judgment.Approved,
			Reason:       r.Judgment.Judgment.Reason,
			WittyComment: r.Judgment.Judgment.WittyComment,
			Source:       string(r.Judgment.Source),
		}
	}
	if r.Status == usecase.CheckoutStatusCompleted {
		order := FromOrder(r.Order)
		res.Order = &order
		res.MessageSource = string(r.Message.Source)
		res.ReceiptURL = "/v1/orders/" + r.Order.ID + "/receipt"
		res.PrintURL = usecase.PrintPathPrefix + r.Order.ID
	}
	return res
}
