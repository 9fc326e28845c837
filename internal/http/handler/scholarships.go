package handler

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/model"
	"scholarstream/internal/service"
)

func CreateScholarship(svc service.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ScholarshipInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		s, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":       "Scholarship created successfully",
			"scholarshipId": s.ID,
			"scholarship":   s,
		})
	}
}

// SearchScholarships serves the public listing. Query parameters: search,
// country, category, degree, sort, limit and offset.
func SearchScholarships(svc service.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return err
		}
		offset, err := queryInt(c, "offset")
		if err != nil {
			return err
		}

		list, err := svc.Search(c.UserContext(), model.ScholarshipFilter{
			Search:   c.Query("search"),
			Country:  c.Query("country"),
			Category: c.Query("category"),
			Degree:   c.Query("degree"),
			Sort:     model.ScholarshipSort(c.Query("sort")),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"total": len(list), "scholarships": list})
	}
}

func GetScholarship(svc service.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(s)
	}
}

func UpdateScholarship(svc service.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ScholarshipUpdate
		if err := parseBody(c, &upd); err != nil {
			return err
		}
		s, err := svc.Update(c.UserContext(), c.Params("id"), upd)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Scholarship updated successfully", "scholarship": s})
	}
}

func DeleteScholarship(svc service.ScholarshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Scholarship deleted successfully", "deletedCount": n})
	}
}
