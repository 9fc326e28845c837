package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"scholarstream/docs"
	"scholarstream/internal/auth"
	"scholarstream/internal/config"
	"scholarstream/internal/database"
	"scholarstream/internal/database/migration"
	handlers "scholarstream/internal/http/handler"
	"scholarstream/internal/http/middleware"
	"scholarstream/internal/logger"
	"scholarstream/internal/otel"
	"scholarstream/internal/payment"
	"scholarstream/internal/repository/postgres"
	"scholarstream/internal/service"
	"scholarstream/internal/storage"
)

// @title ScholarStream API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is auto-loaded if present; real environment variables win.
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	docs.SwaggerInfo.Host = cfg.AppHost

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// The service cannot run without its database.
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Optional integrations stay nil when unconfigured; their routes answer
	// with a misconfiguration or unavailable error instead.
	var gateway payment.Gateway
	if cfg.Payment.StripeSecretKey != "" {
		gateway = payment.NewStripe(cfg.Payment.StripeSecretKey, logger.Component("payment"))
	} else {
		log.Warn().Msg("STRIPE_SECRET_KEY not set, payment intents are disabled")
	}

	var images storage.Storage
	if cfg.MinIO.Endpoint != "" {
		images, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	} else {
		log.Warn().Msg("MINIO_ENDPOINT not set, image uploads are disabled")
	}

	if cfg.Auth.Secret == "" {
		log.Warn().Msg("ACCESS_TOKEN_SECRET not set, authenticated routes will fail")
	}

	userRepo := postgres.NewUserPostgres(db)
	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	limiter := middleware.NewRateLimiter(float64(cfg.Auth.RateRPS), cfg.Auth.RateBurst, logger.Component("ratelimit"))
	done := make(chan struct{})
	defer close(done)
	limiter.StartSweeper(time.Minute, done)

	app := fiber.New(fiber.Config{
		AppName:      "scholarstream",
		ErrorHandler: handlers.ErrorHandler(),
		// Leaves room for a full-size image plus multipart framing.
		BodyLimit:    service.MaxImageSize + 1<<20,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithServerName(cfg.AppHost)))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowCredentials: true,
	}))
	// RequestID adds/propagates X-Request-ID; AccessLog needs it.
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger.Component("http")))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:           db,
		Tokens:       tokens,
		Authorizer:   auth.NewAuthorizer(userRepo),
		RateLimiter:  limiter,
		Metrics:      reg,
		Users:        service.NewUserService(userRepo),
		Scholarships: service.NewScholarshipService(postgres.NewScholarshipPostgres(db)),
		Applications: service.NewApplicationService(postgres.NewApplicationPostgres(db)),
		Reviews:      service.NewReviewService(postgres.NewReviewPostgres(db)),
		Payments:     service.NewPaymentService(gateway, cfg.Payment.Currency),
		Admin:        service.NewAdminService(postgres.NewStatsPostgres(db)),
		Images:       service.NewImageService(images),
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
