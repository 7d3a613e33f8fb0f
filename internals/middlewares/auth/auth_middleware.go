package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authService "fitstudio_backend/internals/features/users/auth/service"
	helper "fitstudio_backend/internals/helpers"
)

// Authenticate verifies the bearer token and stores its claims in Locals.
// With required=false a missing token passes through anonymously, but a
// token that is present must still be valid.
func Authenticate(tokens *authService.TokenService, required bool, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if errors.Is(err, errNoToken) && !required {
			return c.Next()
		}
		if err != nil {
			return helper.Unauthorized("Unauthorized - " + err.Error())
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			if errors.Is(err, authService.ErrMissingSecret) {
				return helper.Internal("auth misconfigured", err)
			}
			log.Debug("rejected token", zap.String("path", c.Path()), zap.Error(err))
			return helper.Unauthorized("Unauthorized - invalid or expired token")
		}
		c.Locals(localsClaims, claims)
		return c.Next()
	}
}

// Skip runs mw for every request except those whose path has one of the
// given prefixes.
func Skip(mw fiber.Handler, prefixes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, p := range prefixes {
			if strings.HasPrefix(path, p) {
				return c.Next()
			}
		}
		return mw(c)
	}
}
