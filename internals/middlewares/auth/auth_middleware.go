// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"

	"github.com/gofiber/fiber/v2"
)

// SessionMiddleware hydrates locals from a valid token and never rejects.
// Pages and APIs decide themselves what an absent session means.
func SessionMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helperAuth.TokenFromRequest(c)
		if raw == "" {
			return c.Next()
		}
		s, err := helperAuth.ParseToken(raw, secret)
		if err != nil {
			log.Printf("[WARN] ignoring session token on %s: %v", c.Path(), err)
			return c.Next()
		}
		helperAuth.StoreSession(c, s)
		return c.Next()
	}
}

// RequireSession answers 401 JSON when no session was resolved.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := helperAuth.CurrentSession(c); !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}
}
