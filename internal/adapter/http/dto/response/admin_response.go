package response

import (
	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase"
)

type AdminUnlockResponse struct {
	Unlocked bool `json:"unlocked"`
}

type DashboardResponse struct {
	CashRevenue        string          `json:"cash_revenue"`
	DisplayCashRevenue string          `json:"display_cash_revenue"`
	FreebieCount       int             `json:"freebie_count"`
	OrderCount         int             `json:"order_count"`
	Orders             []OrderResponse `json:"orders"`
}

func FromDashboard(d usecase.AdminDashboard) DashboardResponse {
	return DashboardResponse{
		CashRevenue:        d.Summary.CashRevenue.StringFixed(2),
		DisplayCashRevenue: entities.FormatEuro(d.Summary.CashRevenue),
		FreebieCount:       d.Summary.FreebieCount,
		OrderCount:         d.Summary.OrderCount,
		Orders:             FromOrders(d.Orders),
	}
}
