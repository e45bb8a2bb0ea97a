package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareCountsByRoute(t *testing.T) {
	Init()
	Init()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/metrics", PrometheusHandler())

	before := testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/items/:id", "418"))
	for _, path := range []string{"/items/1", "/items/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	after := testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/items/:id", "418"))
	if after-before != 2 {
		t.Fatalf("counter delta = %v, want 2", after-before)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "trivia_http_requests_total") {
		t.Fatal("metrics output is missing trivia_http_requests_total")
	}
}
