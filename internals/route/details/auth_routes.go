package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authController "fitstudio_backend/internals/features/users/auth/controller"
	authRoute "fitstudio_backend/internals/features/users/auth/route"
	authService "fitstudio_backend/internals/features/users/auth/service"
)

func AuthRoutes(r fiber.Router, h *authController.AuthController, tokens *authService.TokenService, log *zap.Logger) {
	authRoute.AuthRoutes(r, h, tokens, log)
}
