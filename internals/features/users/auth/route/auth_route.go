package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"fitstudio_backend/internals/features/users/auth/controller"
	"fitstudio_backend/internals/features/users/auth/service"
	"fitstudio_backend/internals/features/users/auth/model"
	rateLimiter "fitstudio_backend/internals/middlewares"
	authMiddleware "fitstudio_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth under r. These routes are always reachable; they
// carry their own token handling.
func AuthRoutes(r fiber.Router, h *controller.AuthController, tokens *service.TokenService, log *zap.Logger) {
	auth := r.Group("/auth")

	auth.Post("/login", rateLimiter.LoginRateLimiter(), h.Login)
	auth.Post("/register", rateLimiter.RegisterRateLimiter(), authMiddleware.Authenticate(tokens, false, log), h.Register)
	auth.Get("/me", authMiddleware.Authenticate(tokens, true, log), h.Me)
	auth.Get("/staff", authMiddleware.Authenticate(tokens, true, log), authMiddleware.OnlyRoles(model.RoleAdmin), h.ListStaff)
}
