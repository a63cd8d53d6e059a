package middlewares

import (
	"time"

	helper "schoolhub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func ipLimiter(enabled bool, max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return !enabled
		},
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every API endpoint.
func GlobalRateLimiter(enabled bool) fiber.Handler {
	return ipLimiter(enabled, 100, 1*time.Minute, "Too many requests. Please try again later.")
}

// LoginRateLimiter is stricter: 5 attempts a minute per IP.
func LoginRateLimiter(enabled bool) fiber.Handler {
	return ipLimiter(enabled, 5, 1*time.Minute, "Too many login attempts. Please wait a moment.")
}

func RegisterRateLimiter(enabled bool) fiber.Handler {
	return ipLimiter(enabled, 3, 5*time.Minute, "Too many sign-up attempts. Please wait a few minutes.")
}
