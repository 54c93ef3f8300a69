package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodAskForFree PaymentMethod = "ASK_FOR_FREE"
)

// Valid reports whether m is one of the supported checkout methods.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodAskForFree
}

// Order is a completed checkout. It is created exactly once, when a checkout
// completes, and never changes afterwards.
//
// Amount is zero for approved free requests, else the product price.
// AIJudgmentReason is only set for approved free requests.
type Order struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Amount           decimal.Decimal `json:"amount"`
	Date             time.Time       `json:"date"`
	Method           PaymentMethod   `json:"method"`
	CustomerName     string          `json:"customer_name"`
	Notes            string          `json:"notes,omitempty"`
	AIJudgmentReason string          `json:"ai_judgment_reason,omitempty"`
	ReceiptMessage   string          `json:"receipt_message,omitempty"`
}

// LedgerSummary holds the admin aggregates over the order ledger.
type LedgerSummary struct {
	CashRevenue  decimal.Decimal `json:"cash_revenue"`
	FreebieCount int             `json:"freebie_count"`
	OrderCount   int             `json:"order_count"`
}

// Summarize computes the admin aggregates. Cash revenue only counts CASH
// orders; the freebie count only counts ASK_FOR_FREE orders.
func Summarize(orders []Order) LedgerSummary {
	s := LedgerSummary{CashRevenue: decimal.Zero, OrderCount: len(orders)}
	for _, o := range orders {
		switch o.Method {
		case PaymentMethodCash:
			s.CashRevenue = s.CashRevenue.Add(o.Amount)
		case PaymentMethodAskForFree:
			s.FreebieCount++
		}
	}
	return s
}
