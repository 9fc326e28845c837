package handler

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/service"
)

// AdminStats serves the dashboard summary.
func AdminStats(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}
