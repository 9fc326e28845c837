package handler

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/model"
	"scholarstream/internal/service"
)

func CreateReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ReviewInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		r, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "Review created successfully",
			"reviewId": r.ID,
			"review":   r,
		})
	}
}

// ListReviews serves the public listing. Query parameters: scholarshipId,
// universityName, minRating and userEmail.
func ListReviews(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		minRating, err := queryInt(c, "minRating")
		if err != nil {
			return err
		}
		list, err := svc.List(c.UserContext(), model.ReviewFilter{
			ScholarshipID:  c.Query("scholarshipId"),
			UniversityName: c.Query("universityName"),
			MinRating:      minRating,
			UserEmail:      c.Query("userEmail"),
		})
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"total": len(list), "reviews": list})
	}
}

func ScholarshipReviews(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.ForScholarship(c.UserContext(), c.Params("scholarshipId"))
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

func GetReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		r, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(r)
	}
}

func UpdateReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ReviewUpdate
		if err := parseBody(c, &upd); err != nil {
			return err
		}
		r, err := svc.Update(c.UserContext(), c.Params("id"), upd)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Review updated successfully", "review": r})
	}
}

func DeleteReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Review deleted successfully", "deletedCount": n})
	}
}
