package handler

import (
	"github.com/gofiber/fiber/v2"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

type tokenRequest struct {
	Email string `json:"email"`
}

// IssueToken exchanges an email for a signed access token.
func IssueToken(issuer TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req tokenRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		token, err := issuer.Issue(req.Email)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"token": token})
	}
}
