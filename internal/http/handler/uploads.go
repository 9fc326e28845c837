package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/apperror"
	"scholarstream/internal/service"
)

// UploadImage stores a multipart image (field name: file).
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return apperror.BadRequest("file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return apperror.BadRequest("cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}

		img, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
}

// ServeImage streams a stored image. The reader is closed by fasthttp once the
// body has been written.
func ServeImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("name"))
		if err != nil {
			return err
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
		size := int(info.Size)
		if size <= 0 {
			size = -1
		}
		return c.SendStream(rc, size)
	}
}
