package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	authService "fitstudio_backend/internals/features/users/auth/service"
)

const localsClaims = "staff_claims"

var (
	errNoToken     = errors.New("no token provided")
	errTokenFormat = errors.New("invalid token format")
)

// extractBearerToken reads "Authorization: Bearer <jwt>", tolerating extra
// whitespace, a lowercase scheme and quoted tokens.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errNoToken
	}
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errTokenFormat
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errNoToken
	}
	return tok, nil
}

// ClaimsFrom returns the verified claims stored by Authenticate, or nil.
func ClaimsFrom(c *fiber.Ctx) *authService.Claims {
	claims, _ := c.Locals(localsClaims).(*authService.Claims)
	return claims
}
