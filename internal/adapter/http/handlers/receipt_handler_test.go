package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"polyforge/internal/adapter/http/handlers/mocks"
	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newReceiptRouter(h *ReceiptHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders/:order_id/receipt", h.GetReceipt)
	r.GET("/print/:order_id", h.PrintReceipt)
	return r
}

func sampleReceipt() entities.Receipt {
	o := entities.Order{
		ID:             "0f1e2d3c-aaaa-bbbb-cccc-000000000001",
		ProductName:    "Sim Gear Shifter",
		Amount:         decimal.Zero,
		Date:           time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC),
		Method:         entities.PaymentMethodAskForFree,
		CustomerName:   "Rui <script>",
		ReceiptMessage: `Neon thanks. AI Note: "ok"`,
	}
	return entities.NewReceipt(o, "https://api.qrserver.com/v1/create-qr-code/?size=100x100&data=x", "/print/"+o.ID)
}

func TestReceiptHandler_GetReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := newReceiptRouter(NewReceiptHandler(uc, 800*time.Millisecond))

		rec := sampleReceipt()
		uc.EXPECT().RenderReceipt(gomock.Any(), rec.OrderID).Return(rec, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/"+rec.OrderID+"/receipt", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"total":"€0.00"`) || !strings.Contains(w.Body.String(), `"receipt_number":"0f1e2d3c"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := newReceiptRouter(NewReceiptHandler(uc, 0))

		uc.EXPECT().RenderReceipt(gomock.Any(), "missing").Return(entities.Receipt{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing/receipt", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReceiptHandler_PrintReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("renders and schedules print", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := newReceiptRouter(NewReceiptHandler(uc, 800*time.Millisecond))

		rec := sampleReceipt()
		uc.EXPECT().RenderReceipt(gomock.Any(), rec.OrderID).Return(rec, nil)

		req := httptest.NewRequest(http.MethodGet, "/print/"+rec.OrderID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Fatalf("unexpected content type %q", ct)
		}
		body := w.Body.String()
		for _, want := range []string{"Receipt #0f1e2d3c", "€0.00", entities.FreeOrderPromo, "window.print()", "800", "Sim Gear Shifter"} {
			if !strings.Contains(body, want) {
				t.Fatalf("print page missing %q:\n%s", want, body)
			}
		}
		if strings.Contains(body, "Rui <script>") {
			t.Fatalf("customer name was not escaped")
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := newReceiptRouter(NewReceiptHandler(uc, 800*time.Millisecond))

		uc.EXPECT().RenderReceipt(gomock.Any(), "nope").Return(entities.Receipt{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/print/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Receipt Not Found") || strings.Contains(body, "window.print") || strings.Contains(body, "TOTAL") {
			t.Fatalf("unexpected not-found page:\n%s", body)
		}
	})

	t.Run("ledger error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReceiptUseCase(ctrl)
		r := newReceiptRouter(NewReceiptHandler(uc, 0))

		uc.EXPECT().RenderReceipt(gomock.Any(), "x").Return(entities.Receipt{}, errors.New("bolt: database not open"))

		req := httptest.NewRequest(http.MethodGet, "/print/x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
