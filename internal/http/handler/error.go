package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"scholarstream/internal/apperror"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	Error string `json:"error"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// ErrorHandler returns a Fiber global error handler. Classified errors keep
// their message; routing errors get a fixed one.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return writeError(c, fe.Code, "Route not found")
			case fiber.StatusMethodNotAllowed:
				return writeError(c, fe.Code, "Method not allowed")
			default:
				return writeError(c, fe.Code, fe.Message)
			}
		}

		kind := apperror.KindOf(err)
		status := apperror.StatusOf(kind)
		if status >= fiber.StatusInternalServerError {
			zerolog.Ctx(c.UserContext()).Error().Err(err).
				Str("kind", kind.String()).
				Str("path", c.Path()).
				Msg("request failed")
		}
		return writeError(c, status, err.Error())
	}
}
