package response

import (
	"polyforge/internal/domain/entities"
	"time"
)

type ReceiptResponse struct {
	OrderID          string    `json:"order_id"`
	ReceiptNumber    string    `json:"receipt_number"`
	Brand            string    `json:"brand"`
	Tagline          string    `json:"tagline"`
	Date             time.Time `json:"date"`
	CustomerName     string    `json:"customer_name"`
	Notes            string    `json:"notes,omitempty"`
	ProductName      string    `json:"product_name"`
	Method           string    `json:"method"`
	LineAmount       string    `json:"line_amount"`
	Total            string    `json:"total"`
	Promo            string    `json:"promo,omitempty"`
	AIJudgmentReason string    `json:"ai_judgment_reason,omitempty"`
	Message          string    `json:"message,omitempty"`
	QRCodeURL        string    `json:"qr_code_url"`
	PrintURL         string    `json:"print_url"`
}

func FromReceipt(r entities.Receipt) ReceiptResponse {
	return ReceiptResponse{
		OrderID:          r.OrderID,
		ReceiptNumber:    r.Number,
		Brand:            entities.ReceiptBrand,
		Tagline:          entities.ReceiptTagline,
		Date:             r.Date,
		CustomerName:     r.CustomerName,
		Notes:            r.Notes,
		ProductName:      r.ProductName,
		Method:           string(r.Method),
		LineAmount:       entities.FormatEuro(r.LineAmount),
		Total:            entities.FormatEuro(r.Total),
		Promo:            r.Promo,
		AIJudgmentReason: r.AIJudgmentReason,
		Message:          r.Message,
		QRCodeURL:        r.QRCodeURL,
		PrintURL:         r.PrintURL,
	}
}
