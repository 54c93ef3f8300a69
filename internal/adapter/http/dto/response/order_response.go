package response

import (
	"polyforge/internal/domain/entities"
	"time"
)

type OrderResponse struct {
	OrderID          string    `json:"order_id"`
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	Amount           string    `json:"amount"`
	DisplayAmount    string    `json:"display_amount"`
	Date             time.Time `json:"date"`
	Method           string    `json:"method"`
	CustomerName     string    `json:"customer_name"`
	Notes            string    `json:"notes,omitempty"`
	AIJudgmentReason string    `json:"ai_judgment_reason,omitempty"`
	ReceiptMessage   string    `json:"receipt_message,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:          o.ID,
		ProductID:        o.ProductID,
		ProductName:      o.ProductName,
		Amount:           o.Amount.StringFixed(2),
		DisplayAmount:    entities.FormatEuro(o.Amount),
		Date:             o.Date,
		Method:           string(o.Method),
		CustomerName:     o.CustomerName,
		Notes:            o.Notes,
		AIJudgmentReason: o.AIJudgmentReason,
		ReceiptMessage:   o.ReceiptMessage,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
