package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ReceiptBrand    = "PolyForge"
	ReceiptTagline  = "Premium 3D Fabrication"
	FreeOrderPromo  = "* Promo: Persuaded AI Overlord"
	receiptIDLength = 8
)

// Receipt is the printable view of an order.
type Receipt struct {
	OrderID          string
	Number           string
	Date             time.Time
	CustomerName     string
	Notes            string
	ProductName      string
	Method           PaymentMethod
	LineAmount       decimal.Decimal
	Total            decimal.Decimal
	Promo            string
	AIJudgmentReason string
	Message          string
	QRCodeURL        string
	PrintURL         string
}

// NewReceipt lays out an order as a receipt. Free orders always print €0.00.
func NewReceipt(o Order, qrCodeURL, printURL string) Receipt {
	amount := o.Amount
	promo := ""
	if o.Method == PaymentMethodAskForFree {
		amount = decimal.Zero
		promo = FreeOrderPromo
	}
	return Receipt{
		OrderID:          o.ID,
		Number:           ShortReceiptNumber(o.ID),
		Date:             o.Date,
		CustomerName:     o.CustomerName,
		Notes:            o.Notes,
		ProductName:      o.ProductName,
		Method:           o.Method,
		LineAmount:       amount,
		Total:            amount,
		Promo:            promo,
		AIJudgmentReason: o.AIJudgmentReason,
		Message:          o.ReceiptMessage,
		QRCodeURL:        qrCodeURL,
		PrintURL:         printURL,
	}
}

// ShortReceiptNumber is the first eight characters of the order id.
func ShortReceiptNumber(orderID string) string {
	if len(orderID) <= receiptIDLength {
		return orderID
	}
	return orderID[:receiptIDLength]
}

// QRCodePayload is the verification text encoded in a receipt's QR code.
func QRCodePayload(orderID string) string {
	return "Receipt is valid. Order ID: " + orderID
}
