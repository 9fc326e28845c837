package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"scholarstream/internal/apperror"
)

func TestPrometheusMiddleware(t *testing.T) {
	// Fresh registry per test avoids duplicate registration.
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}

	app := fiber.New()
	app.Use(promMiddleware.Handler())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return apperror.Forbidden("Forbidden: Admin access required")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	for _, tc := range []struct{ method, path string }{
		{"GET", "/test"}, {"DELETE", "/test"}, {"GET", "/error"}, {"GET", "/forbidden"}, {"GET", "/boom"},
	} {
		app.Test(httptest.NewRequest(tc.method, tc.path, nil))
	}

	for _, want := range [][3]string{
		{"GET", "/test", "200"},
		{"DELETE", "/test", "200"},
		{"GET", "/error", "400"},
		{"GET", "/forbidden", "403"},
		{"GET", "/boom", "500"},
	} {
		count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues(want[0], want[1], want[2]))
		if count != 1 {
			t.Errorf("expected count 1 for %v, got %f", want, count)
		}
	}
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() == "http_requests_total" && len(mf.GetMetric()) > 0 {
			t.Errorf("expected 0 metrics for http_requests_total, got %d", len(mf.GetMetric()))
		}
	}
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	promMiddleware, err := NewPrometheusMiddleware(reg)
	if err != nil {
		t.Fatalf("failed to create middleware: %v", err)
	}

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	app.Get("/api/scholarships/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/api/scholarships/7d9f3a52-0c1e-4b8a-9f6d-2e4c5b6a7d81", nil))

	count := testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues("GET", "/api/scholarships/:id", "200"))
	if count != 1 {
		t.Errorf("expected count 1 for pattern /api/scholarships/:id, got %f", count)
	}

	if n := testutil.CollectAndCount(promMiddleware.requestDuration); n == 0 {
		t.Error("expected histogram metrics to be collected, got 0")
	}
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPrometheusMiddleware(reg); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := NewPrometheusMiddleware(reg); err == nil {
		t.Error("expected duplicate registration error")
	}
}
