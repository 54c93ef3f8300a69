package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	response "polyforge/internal/adapter/http/dto/response"
	"polyforge/internal/usecase"
	"polyforge/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var printTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const htmlContentType = "text/html; charset=utf-8"

type printPage struct {
	Receipt      response.ReceiptResponse
	PrintDelayMs int64
}

type unavailablePage struct {
	Title   string
	Message string
}

// ReceiptHandler serves receipts as JSON and as a printable page.
type ReceiptHandler struct {
	usecase    usecase.IReceiptUseCase
	printDelay time.Duration
}

func NewReceiptHandler(uc usecase.IReceiptUseCase, printDelay time.Duration) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc, printDelay: printDelay}
}

// GetReceipt godoc
// @Summary      Receipt for an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Order ID"
// @Success      200       {object}  response.ReceiptResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id}/receipt [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	r, err := h.usecase.RenderReceipt(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapReceiptError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceipt(r))
}

// PrintReceipt renders the print page. Unknown orders get a not-found page;
// no order data is ever written for them.
func (h *ReceiptHandler) PrintReceipt(c *gin.Context) {
	orderID := c.Param("order_id")

	r, err := h.usecase.RenderReceipt(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) || errors.Is(err, usecase.ErrInvalidOrderID) {
			log.Printf("[receipt][handler] print not-found order_id=%s", orderID)
			h.renderHTML(c, http.StatusNotFound, "print_unavailable.html", unavailablePage{
				Title:   "Receipt Not Found",
				Message: "This receipt does not exist or has expired.",
			})
			return
		}
		log.Printf("[receipt][handler] print failed order_id=%s err=%v", orderID, err)
		h.renderHTML(c, http.StatusInternalServerError, "print_unavailable.html", unavailablePage{
			Title:   "Receipt Unavailable",
			Message: "The receipt could not be loaded. Try again later.",
		})
		return
	}

	h.renderHTML(c, http.StatusOK, "print_receipt.html", printPage{
		Receipt:      response.FromReceipt(r),
		PrintDelayMs: h.printDelay.Milliseconds(),
	})
}

func (h *ReceiptHandler) renderHTML(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := printTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[receipt][handler] template failed name=%s err=%v", name, err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, htmlContentType, buf.Bytes())
}

func mapReceiptError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
