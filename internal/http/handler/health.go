package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Root answers the banner route.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString("ScholarStream Server is running")
	}
}

// HealthCheck reports database connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ts := time.Now().UTC().Format(time.RFC3339)
		if db == nil || ping(c.UserContext(), db) != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":    "ERROR",
				"message":   "Database not connected",
				"timestamp": ts,
				"database":  "Disconnected",
			})
		}
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Server is healthy",
			"timestamp": ts,
			"database":  "Connected",
		})
	}
}

func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
