package controller

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/users/auth/dto"
	"fitstudio_backend/internals/features/users/auth/service"
	helper "fitstudio_backend/internals/helpers"
	authMiddleware "fitstudio_backend/internals/middlewares/auth"
)

type AuthController struct {
	svc *service.Service
}

func NewAuthController(svc *service.Service) *AuthController {
	return &AuthController{svc: svc}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	u, err := ac.svc.Register(c.UserContext(), req, authMiddleware.ClaimsFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Staff registered successfully",
		"user":    u,
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.BadRequest("Invalid request body")
	}
	out, err := ac.svc.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	claims := authMiddleware.ClaimsFrom(c)
	if claims == nil {
		return helper.Unauthorized("Unauthorized - no token provided")
	}
	u, err := ac.svc.Me(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": u})
}

// GET /api/auth/staff (admin only)
func (ac *AuthController) ListStaff(c *fiber.Ctx) error {
	rows, err := ac.svc.ListStaff(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"staff": rows, "total": len(rows)})
}
