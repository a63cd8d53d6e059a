package middlewares

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"schoolhub_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware(), TimingMiddleware(time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		_, hasDeadline := c.UserContext().Deadline()
		assert.True(t, hasDeadline)
		return c.SendString(c.Locals(LocRequestID).(string))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.NotEmpty(t, resp.Header.Get("X-Response-Time"))

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRateLimiterDisabledPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(false), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for i := 0; i < 10; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
}

func TestLoginRateLimiterBlocksAfterFive(t *testing.T) {
	app := fiber.New()
	app.Post("/login", LoginRateLimiter(true), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	var last int
	for i := 0; i < 6; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/login", nil))
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}

func TestLoginRateLimiterIgnoresForwardedForByDefault(t *testing.T) {
	app := NewApp(&configs.Config{})
	app.Post("/login", LoginRateLimiter(true), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	limited := 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/login", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, fmt.Sprintf("198.51.100.%d", i+1))
		resp, err := app.Test(req)
		require.NoError(t, err)
		if resp.StatusCode == fiber.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 5, limited)
}

func TestNewAppHonoursConfiguredProxies(t *testing.T) {
	echoIP := func(c *fiber.Ctx) error { return c.SendString(c.IP()) }

	trusting := NewApp(&configs.Config{TrustedProxies: []string{"0.0.0.0/0"}})
	trusting.Get("/ip", echoIP)
	plain := NewApp(&configs.Config{})
	plain.Get("/ip", echoIP)

	ipFrom := func(app *fiber.App) string {
		req := httptest.NewRequest(fiber.MethodGet, "/ip", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7")
		resp, err := app.Test(req)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(raw)
	}
	assert.Equal(t, "203.0.113.7", ipFrom(trusting))
	assert.NotEqual(t, "203.0.113.7", ipFrom(plain))
}
