package handler

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/service"
)

type paymentIntentRequest struct {
	Price *float64 `json:"price"`
}

func CreatePaymentIntent(svc service.PaymentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req paymentIntentRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		secret, err := svc.CreateIntent(c.UserContext(), req.Price)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"clientSecret": secret})
	}
}
