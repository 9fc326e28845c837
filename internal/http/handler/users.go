package handler

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/internal/model"
	"scholarstream/internal/service"
)

func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.UserInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		u, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User created successfully",
			"userId":  u.ID,
			"user":    u,
		})
	}
}

func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"total": len(users), "users": users})
	}
}

func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

func GetUserByEmail(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.GetByEmail(c.UserContext(), pathParam(c, "email"))
		if err != nil {
			return err
		}
		return c.JSON(u)
	}
}

func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.UserUpdate
		if err := parseBody(c, &upd); err != nil {
			return err
		}
		// Role changes are admin-only and go through PATCH /:id/role.
		upd.Role = nil
		u, err := svc.Update(c.UserContext(), c.Params("id"), upd)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "User updated successfully", "user": u})
	}
}

type roleRequest struct {
	Role model.Role `json:"role"`
}

func UpdateUserRole(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req roleRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}
		u, err := svc.UpdateRole(c.UserContext(), c.Params("id"), req.Role)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "User role updated successfully", "user": u})
	}
}

func DeleteUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "User deleted successfully", "deletedCount": n})
	}
}
