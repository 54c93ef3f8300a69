package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordCheckout(t *testing.T) {
	before := testutil.ToFloat64(checkouts.WithLabelValues("CASH", "completed"))
	RecordCheckout("CASH", "completed")
	if got := testutil.ToFloat64(checkouts.WithLabelValues("CASH", "completed")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestRecordModelCall(t *testing.T) {
	before := testutil.ToFloat64(modelCalls.WithLabelValues("judge", "fallback"))
	RecordModelCall("judge", "fallback", 10*time.Millisecond)
	if got := testutil.ToFloat64(modelCalls.WithLabelValues("judge", "fallback")); got != before+1 {
		t.Fatalf("expected %v, got %v", before+1, got)
	}
}

func TestGinMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `polyforge_http_requests_total{method="GET",route="/v1/ping",status="200"}`) {
		t.Fatalf("expected ping request to be counted, got:\n%s", body)
	}
}
