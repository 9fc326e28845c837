package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/apperror"
)

// parseBody decodes the request body into out. An empty body leaves out
// untouched so the service reports which fields are missing.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	return nil
}

// queryInt reads an optional integer query parameter. Absent means 0.
func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.BadRequest("Invalid " + key)
	}
	return n, nil
}

// pathParam returns a decoded path parameter. Emails arrive with %40 when the
// client escapes them.
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
