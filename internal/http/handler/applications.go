package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/apperror"
	"scholarstream/internal/http/middleware"
	"scholarstream/internal/model"
	"scholarstream/internal/service"
)

func CreateApplication(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ApplicationInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":       "Application created successfully",
			"applicationId": a.ID,
			"application":   a,
		})
	}
}

// ListApplications is the staff listing. Query parameters: userId,
// scholarshipId, status and paymentStatus.
func ListApplications(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.List(c.UserContext(), model.ApplicationFilter{
			UserID:        c.Query("userId"),
			ScholarshipID: c.Query("scholarshipId"),
			Status:        c.Query("status"),
			PaymentStatus: c.Query("paymentStatus"),
		})
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"total": len(list), "applications": list})
	}
}

// ListMyApplications lists the caller's own applications. The email in the
// path must match the token.
func ListMyApplications(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := pathParam(c, "email")
		claims := middleware.ClaimsFrom(c)
		if claims == nil || !strings.EqualFold(claims.Email, email) {
			return apperror.Forbidden("Forbidden: You can only view your own applications")
		}

		list, err := svc.ListByEmail(c.UserContext(), email)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"total": len(list), "applications": list})
	}
}

func GetApplication(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(a)
	}
}

// UpdateApplication edits the applicant-owned fields. Status and feedback are
// left to the moderator route.
func UpdateApplication(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ApplicationUpdate
		if err := parseBody(c, &upd); err != nil {
			return err
		}
		upd.ApplicationStatus = nil
		upd.Feedback = nil

		a, err := svc.Update(c.UserContext(), c.Params("id"), upd)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Application updated successfully", "application": a})
	}
}

type statusRequest struct {
	ApplicationStatus string  `json:"applicationStatus"`
	Feedback          *string `json:"feedback"`
}

func UpdateApplicationStatus(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req statusRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		a, err := svc.UpdateStatus(c.UserContext(), c.Params("id"), req.ApplicationStatus, req.Feedback)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Application status updated successfully", "application": a})
	}
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func UpdateApplicationPayment(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req paymentStatusRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		a, err := svc.UpdatePayment(c.UserContext(), c.Params("id"), req.PaymentStatus)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Payment status updated successfully", "application": a})
	}
}

func DeleteApplication(svc service.ApplicationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Application deleted successfully", "deletedCount": n})
	}
}
