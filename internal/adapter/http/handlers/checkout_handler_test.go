package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"polyforge/internal/adapter/http/handlers/mocks"
	"polyforge/internal/domain/entities"
	"polyforge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/checkouts", h.StartCheckout)
	r.GET("/v1/checkouts/:checkout_id", h.GetCheckout)
	r.PATCH("/v1/checkouts/:checkout_id/method", h.SelectMethod)
	r.PATCH("/v1/checkouts/:checkout_id/back", h.Back)
	r.POST("/v1/checkouts/:checkout_id/submit", h.Submit)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutHandler_StartCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/checkouts", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		uc.EXPECT().StartCheckout(gomock.Any(), "9").Return(entities.Checkout{}, usecase.ErrProductNotFound)

		w := doJSON(r, http.MethodPost, "/v1/checkouts", `{"product_id":" 9 "}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().StartCheckout(gomock.Any(), "1").Return(entities.NewCheckout("chk-1", "1", now), nil)

		w := doJSON(r, http.MethodPost, "/v1/checkouts", `{"product_id":"1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["checkout_id"] != "chk-1" || body["step"] != "SELECT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCheckoutHandler_SelectMethodAndBack(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		path       string
		body       string
		setup      func(uc *mocks.MockICheckoutUseCase)
		wantStatus int
	}{
		{
			name: "lower case method",
			path: "/v1/checkouts/chk-1/method",
			body: `{"method":"cash"}`,
			setup: func(uc *mocks.MockICheckoutUseCase) {
				uc.EXPECT().SelectMethod(gomock.Any(), "chk-1", entities.PaymentMethodCash).
					Return(entities.Checkout{ID: "chk-1", Step: entities.CheckoutStepForm, Method: entities.PaymentMethodCash}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown method",
			path: "/v1/checkouts/chk-1/method",
			body: `{"method":"crypto"}`,
			setup: func(uc *mocks.MockICheckoutUseCase) {
				uc.EXPECT().SelectMethod(gomock.Any(), "chk-1", entities.PaymentMethod("CRYPTO")).
					Return(entities.Checkout{}, entities.ErrInvalidPaymentMethod)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing method",
			path:       "/v1/checkouts/chk-1/method",
			body:       `{}`,
			setup:      func(uc *mocks.MockICheckoutUseCase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong step",
			path: "/v1/checkouts/chk-1/method",
			body: `{"method":"CASH"}`,
			setup: func(uc *mocks.MockICheckoutUseCase) {
				uc.EXPECT().SelectMethod(gomock.Any(), "chk-1", entities.PaymentMethodCash).
					Return(entities.Checkout{}, entities.ErrInvalidCheckoutTransition)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "back",
			path: "/v1/checkouts/chk-1/back",
			setup: func(uc *mocks.MockICheckoutUseCase) {
				uc.EXPECT().Back(gomock.Any(), "chk-1").Return(entities.Checkout{ID: "chk-1", Step: entities.CheckoutStepSelect}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "back unknown checkout",
			path: "/v1/checkouts/nope/back",
			setup: func(uc *mocks.MockICheckoutUseCase) {
				uc.EXPECT().Back(gomock.Any(), "nope").Return(entities.Checkout{}, usecase.ErrCheckoutNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			tt.setup(uc)
			r := newCheckoutRouter(NewCheckoutHandler(uc))

			w := doJSON(r, http.MethodPatch, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCheckoutHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		form := entities.CheckoutForm{CustomerName: "Ana", Notes: "gold"}
		uc.EXPECT().Submit(gomock.Any(), "chk-1", form).Return(usecase.CheckoutResult{
			Status:   usecase.CheckoutStatusCompleted,
			Checkout: entities.Checkout{ID: "chk-1", Step: entities.CheckoutStepCompleted, OrderID: "ord-1"},
			Order:    entities.Order{ID: "ord-1", Amount: decimal.RequireFromString("5.00"), Method: entities.PaymentMethodCash, CustomerName: "Ana"},
			Message:  entities.ReceiptMessage{Text: "ok", Source: entities.OutcomeSourceModel},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/checkouts/chk-1/submit", `{"customer_name":"Ana","notes":"gold"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status string `json:"status"`
			Order  struct {
				OrderID string `json:"order_id"`
				Amount  string `json:"amount"`
			} `json:"order"`
			PrintURL string `json:"print_url"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body.Status != "COMPLETED" || body.Order.OrderID != "ord-1" || body.Order.Amount != "5.00" || body.PrintURL != "/print/ord-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("denied is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(uc))

		outcome := entities.JudgmentOutcome{Judgment: entities.OfflineJudgment(), Source: entities.OutcomeSourceFallback, Cause: errors.New("timeout")}
		uc.EXPECT().Submit(gomock.Any(), "chk-2", gomock.Any()).Return(usecase.CheckoutResult{
			Status:   usecase.CheckoutStatusDenied,
			Checkout: entities.Checkout{ID: "chk-2", Step: entities.CheckoutStepSelect},
			Judgment: &outcome,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/checkouts/chk-2/submit", `{"customer_name":"Ana","justification":"pls"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "DENIED" || body["order"] != nil {
			t.Fatalf("unexpected body: %v", body)
		}
		judgment, _ := body["judgment"].(map[string]any)
		if judgment["source"] != "fallback" || judgment["approved"] != false {
			t.Fatalf("unexpected judgment: %v", judgment)
		}
	})

	errorCases := []struct {
		err  error
		want int
		code string
	}{
		{entities.ErrMissingCustomerName, http.StatusBadRequest, "MISSING_CUSTOMER_NAME"},
		{entities.ErrMissingJustification, http.StatusBadRequest, "MISSING_JUSTIFICATION"},
		{usecase.ErrCheckoutInProgress, http.StatusConflict, "CHECKOUT_IN_PROGRESS"},
		{usecase.ErrCheckoutNotFound, http.StatusNotFound, "CHECKOUT_NOT_FOUND"},
		{errors.New("ledger down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range errorCases {
		t.Run(tc.code, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICheckoutUseCase(ctrl)
			r := newCheckoutRouter(NewCheckoutHandler(uc))

			uc.EXPECT().Submit(gomock.Any(), "chk-1", gomock.Any()).Return(usecase.CheckoutResult{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/checkouts/chk-1/submit", `{"customer_name":""}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			var body map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tc.code {
				t.Fatalf("expected code %s, got %v", tc.code, body)
			}
		})
	}
}
