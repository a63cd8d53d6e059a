package middlewares

import (
	"time"

	"schoolhub_backend/internals/configs"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/middlewares/logger"
	"schoolhub_backend/internals/middlewares/metrics"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// RequestTimeout bounds every handler's user context.
const RequestTimeout = 5 * time.Second

// NewApp builds the fiber app. X-Forwarded-For is only honoured from
// cfg.TrustedProxies, so rate limits key on an address the client cannot pick.
func NewApp(cfg *configs.Config) *fiber.App {
	return fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FiberErrorHandler,
		DisableStartupMessage:   true,
		BodyLimit:               helper.MaxUploadSize + 1<<20,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          cfg.TrustedProxies,
	})
}

// SetupMiddlewares installs the stack shared by pages and the API, in order.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(TimingMiddleware(RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(metrics.Middleware())
}
