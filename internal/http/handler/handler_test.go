package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scholarstream/internal/apperror"
	"scholarstream/internal/auth"
	"scholarstream/internal/model"
	"scholarstream/internal/repository"
	repoMocks "scholarstream/internal/repository/mocks"
	serviceMocks "scholarstream/internal/service/mocks"
)

const validID = "7d9f3a52-0c1e-4b8a-9f6d-2e4c5b6a7d81"

var anyCtx = mock.MatchedBy(func(context.Context) bool { return true })

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
}

func jsonRequest(method, target string, body any) *http.Request {
	var r io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func errorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "OK", body["status"])
		assert.Equal(t, "Connected", body["database"])
		assert.Equal(t, "Server is healthy", body["message"])
		_, err := time.Parse(time.RFC3339, body["timestamp"])
		assert.NoError(t, err)
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ERROR", body["status"])
		assert.Equal(t, "Disconnected", body["database"])
	})

	t.Run("no database", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ScholarStream Server is running", string(body))
}

func TestErrorHandler(t *testing.T) {
	app := newApp()
	app.Get("/classified", func(c *fiber.Ctx) error { return apperror.Conflict("User with this email already exists") })
	app.Get("/internal", func(c *fiber.Ctx) error { return apperror.Internal(errors.New("connection reset")) })
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTooManyRequests, "slow down") })

	tests := []struct {
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"/classified", http.StatusConflict, "User with this email already exists"},
		{"/internal", http.StatusInternalServerError, "connection reset"},
		{"/plain", http.StatusInternalServerError, "boom"},
		{"/fiber", http.StatusTooManyRequests, "slow down"},
		{"/nowhere", http.StatusNotFound, "Route not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantMsg, errorMessage(t, resp))
		})
	}
}

type routeFixture struct {
	app    *fiber.App
	tokens *auth.TokenService
	users  *repoMocks.MockUserRepository
	deps   Dependencies
}

func newRouteFixture(t *testing.T) *routeFixture {
	t.Helper()
	tokens := auth.NewTokenService("route-secret", time.Hour)
	users := new(repoMocks.MockUserRepository)
	users.On("FindByEmail", anyCtx, "admin@example.com").
		Return(&model.User{ID: "a1", Email: "admin@example.com", Role: model.RoleAdmin}, nil).Maybe()
	users.On("FindByEmail", anyCtx, "mod@example.com").
		Return(&model.User{ID: "m1", Email: "mod@example.com", Role: model.RoleModerator}, nil).Maybe()
	users.On("FindByEmail", anyCtx, "ada@example.com").
		Return(&model.User{ID: "u1", Email: "ada@example.com", Role: model.RoleApplicant}, nil).Maybe()
	users.On("FindByEmail", anyCtx, "ghost@example.com").Return(nil, repository.ErrNotFound).Maybe()

	deps := Dependencies{
		Tokens:       tokens,
		Authorizer:   auth.NewAuthorizer(users),
		Metrics:      prometheus.NewRegistry(),
		Users:        new(serviceMocks.MockUserService),
		Scholarships: new(serviceMocks.MockScholarshipService),
		Applications: new(serviceMocks.MockApplicationService),
		Reviews:      new(serviceMocks.MockReviewService),
		Payments:     new(serviceMocks.MockPaymentService),
		Admin:        new(serviceMocks.MockAdminService),
		Images:       new(serviceMocks.MockImageService),
	}
	app := newApp()
	RegisterRoutes(app, deps)
	return &routeFixture{app: app, tokens: tokens, users: users, deps: deps}
}

func (f *routeFixture) do(t *testing.T, method, target, email string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if email != "" {
		tok, err := f.tokens.Issue(email)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRouting(t *testing.T) {
	f := newRouteFixture(t)

	t.Run("not found route", func(t *testing.T) {
		resp := f.do(t, http.MethodGet, "/non-existent", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Route not found", errorMessage(t, resp))
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp := f.do(t, http.MethodPost, "/health", "")
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "Method not allowed", errorMessage(t, resp))
	})

	t.Run("metrics", func(t *testing.T) {
		resp := f.do(t, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestRouting_Guards(t *testing.T) {
	f := newRouteFixture(t)
	admin := f.deps.Admin.(*serviceMocks.MockAdminService)
	admin.On("Stats", anyCtx).Return(&model.AdminStats{TotalUsers: 3, ChartData: []model.CategoryCount{}}, nil)
	apps := f.deps.Applications.(*serviceMocks.MockApplicationService)
	apps.On("UpdateStatus", anyCtx, validID, "accepted", (*string)(nil)).
		Return(nil, apperror.BadRequest("stop here"))

	tests := []struct {
		name       string
		method     string
		target     string
		email      string
		wantStatus int
		wantMsg    string
	}{
		{"admin stats without token", http.MethodGet, "/api/admin/admin-stats", "", 401, auth.MsgNoToken},
		{"admin stats as applicant", http.MethodGet, "/api/admin/admin-stats", "ada@example.com", 403, "Forbidden: Admin access required"},
		{"admin stats unknown user", http.MethodGet, "/api/admin/admin-stats", "ghost@example.com", 404, "User not found"},
		{"admin stats as admin", http.MethodGet, "/api/admin/admin-stats", "admin@example.com", 200, ""},
		{"create scholarship as applicant", http.MethodPost, "/api/scholarships", "ada@example.com", 403, "Forbidden: Admin or Moderator access required"},
		{"status patch as admin", http.MethodPatch, "/api/applications/" + validID + "/status", "admin@example.com", 403, "Forbidden: Moderator access required"},
		{"list users as moderator", http.MethodGet, "/api/users", "mod@example.com", 403, "Forbidden: Admin access required"},
		{"payment intent without token", http.MethodPost, "/api/payments/create-payment-intent", "", 401, auth.MsgNoToken},
		{"my applications of someone else", http.MethodGet, "/api/applications/user/bob@example.com", "ada@example.com", 403, "Forbidden: You can only view your own applications"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := f.do(t, tt.method, tt.target, tt.email)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorMessage(t, resp))
			}
		})
	}

	t.Run("status patch as moderator reaches handler", func(t *testing.T) {
		req := jsonRequest(http.MethodPatch, "/api/applications/"+validID+"/status", map[string]string{"applicationStatus": "accepted"})
		tok, _ := f.tokens.Issue("mod@example.com")
		req.Header.Set("Authorization", "Bearer "+tok)

		resp, _ := f.app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "stop here", errorMessage(t, resp))
		apps.AssertExpectations(t)
	})
}

func TestSwaggerUI_RequestHost(t *testing.T) {
	app := newApp()
	app.Get("/swagger/*", SwaggerUI())

	const n = 8
	hosts := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("http://api-%d.test/swagger/doc.json", i), nil)
			req.Header.Set("X-Forwarded-Proto", "https, http")
			resp, err := app.Test(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			var doc struct {
				Host    string   `json:"host"`
				Schemes []string `json:"schemes"`
			}
			if json.NewDecoder(resp.Body).Decode(&doc) == nil && len(doc.Schemes) == 1 && doc.Schemes[0] == "https" {
				hosts[i] = doc.Host
			}
		}(i)
	}
	wg.Wait()

	for i, h := range hosts {
		assert.Equal(t, fmt.Sprintf("api-%d.test", i), h)
	}
}
