package routes

import (
	"polyforge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts  = "/products"
	PathCheckouts = "/checkouts"
	PathOrders    = "/orders"
	PathAdmin     = "/admin"
	PathPrint     = "/print"
)

func addStorefrontRoutes(rg *gin.RouterGroup, h Handlers) {
	products := rg.Group(PathProducts)
	{
		products.GET("", h.Catalog.ListProducts)
		products.GET("/:product_id", h.Catalog.GetProduct)
	}

	checkouts := rg.Group(PathCheckouts)
	{
		checkouts.POST("", h.Checkout.StartCheckout)
		checkouts.GET("/:checkout_id", h.Checkout.GetCheckout)
		checkouts.PATCH("/:checkout_id/method", h.Checkout.SelectMethod)
		checkouts.PATCH("/:checkout_id/back", h.Checkout.Back)
		checkouts.POST("/:checkout_id/submit", h.Checkout.Submit)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id/receipt", h.Receipt.GetReceipt)
	}

	admin := rg.Group(PathAdmin)
	{
		admin.POST("/unlock", h.Admin.Unlock)
		admin.GET("/dashboard", h.Admin.Dashboard)
	}
}

// addPrintRoutes mounts the shareable print page outside /v1.
func addPrintRoutes(router *gin.Engine, receipt *handlers.ReceiptHandler) {
	router.GET(PathPrint+"/:order_id", receipt.PrintReceipt)
}
