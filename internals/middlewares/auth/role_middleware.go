package auth

import (
	"github.com/gofiber/fiber/v2"

	"fitstudio_backend/internals/features/users/auth/model"
	helper "fitstudio_backend/internals/helpers"
)

// OnlyRoles allows the request when the authenticated staff user has one of
// the given roles.
func OnlyRoles(roles ...model.StaffRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return helper.Unauthorized("Unauthorized - missing role information")
		}
		for _, r := range roles {
			if claims.Role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
	}
}
