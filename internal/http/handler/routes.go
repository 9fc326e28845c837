package handler

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scholarstream/docs"
	"scholarstream/internal/http/middleware"
	"scholarstream/internal/model"
	"scholarstream/internal/service"
)

// Tokens issues and verifies access tokens.
type Tokens interface {
	TokenIssuer
	middleware.TokenVerifier
}

// Dependencies is everything RegisterRoutes wires into handlers.
// RateLimiter and Metrics are optional.
type Dependencies struct {
	DB          *sql.DB
	Tokens      Tokens
	Authorizer  middleware.RoleAuthorizer
	RateLimiter *middleware.RateLimiter
	Metrics     prometheus.Gatherer

	Users        service.UserService
	Scholarships service.ScholarshipService
	Applications service.ApplicationService
	Reviews      service.ReviewService
	Payments     service.PaymentService
	Admin        service.AdminService
	Images       service.ImageService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Guards run
// in order: token, role, handler.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/", Root())
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}
	app.Get("/swagger/*", SwaggerUI())

	token := middleware.RequireToken(d.Tokens)
	role := func(roles ...model.Role) fiber.Handler {
		return middleware.RequireRole(d.Authorizer, roles...)
	}
	staff := role(model.RoleAdmin, model.RoleModerator)
	admin := role(model.RoleAdmin)

	api := app.Group("/api")

	issue := []fiber.Handler{IssueToken(d.Tokens)}
	if d.RateLimiter != nil {
		issue = append([]fiber.Handler{d.RateLimiter.Handler()}, issue...)
	}
	api.Post("/auth/jwt", issue...)

	users := api.Group("/users")
	users.Post("/", CreateUser(d.Users))
	users.Get("/", token, admin, ListUsers(d.Users))
	users.Get("/email/:email", token, GetUserByEmail(d.Users))
	users.Get("/:id", token, GetUser(d.Users))
	users.Put("/:id", token, UpdateUser(d.Users))
	users.Patch("/:id/role", token, admin, UpdateUserRole(d.Users))
	users.Delete("/:id", token, admin, DeleteUser(d.Users))

	scholarships := api.Group("/scholarships")
	scholarships.Post("/", token, staff, CreateScholarship(d.Scholarships))
	scholarships.Get("/all-scholarships", SearchScholarships(d.Scholarships))
	scholarships.Get("/:id", GetScholarship(d.Scholarships))
	scholarships.Put("/:id", token, staff, UpdateScholarship(d.Scholarships))
	scholarships.Delete("/:id", token, staff, DeleteScholarship(d.Scholarships))

	applications := api.Group("/applications")
	applications.Post("/", token, CreateApplication(d.Applications))
	applications.Get("/", token, staff, ListApplications(d.Applications))
	applications.Get("/user/:email", token, ListMyApplications(d.Applications))
	applications.Get("/:id", token, GetApplication(d.Applications))
	applications.Put("/:id", token, UpdateApplication(d.Applications))
	applications.Patch("/:id/status", token, role(model.RoleModerator), UpdateApplicationStatus(d.Applications))
	applications.Patch("/:id/payment", token, UpdateApplicationPayment(d.Applications))
	applications.Delete("/:id", token, DeleteApplication(d.Applications))

	reviews := api.Group("/reviews")
	reviews.Post("/", token, CreateReview(d.Reviews))
	reviews.Get("/", ListReviews(d.Reviews))
	reviews.Get("/scholarship/:scholarshipId", ScholarshipReviews(d.Reviews))
	reviews.Get("/:id", GetReview(d.Reviews))
	reviews.Put("/:id", token, UpdateReview(d.Reviews))
	reviews.Delete("/:id", token, DeleteReview(d.Reviews))

	api.Post("/payments/create-payment-intent", token, CreatePaymentIntent(d.Payments))
	api.Get("/admin/admin-stats", token, admin, AdminStats(d.Admin))

	uploads := api.Group("/uploads")
	uploads.Post("/images", token, UploadImage(d.Images))
	uploads.Get("/images/:name", ServeImage(d.Images))
}

// swaggerMu serialises writes to the shared docs.SwaggerInfo with the reads
// swag makes while rendering doc.json.
var swaggerMu sync.Mutex

// SwaggerUI serves the API docs with the host and scheme of the current request.
func SwaggerUI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		swaggerMu.Lock()
		defer swaggerMu.Unlock()
		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
