package routes

import (
	"fmt"
	"log"
	"time"

	"schoolhub_backend/internals/constants"
	rateLimiter "schoolhub_backend/internals/middlewares"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
	"schoolhub_backend/internals/middlewares/metrics"
	routeDetails "schoolhub_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, d routeDetails.Deps) {
	startTime = time.Now()

	// Optional session for every request; handlers and gates read it from locals.
	app.Use(authMiddleware.SessionMiddleware(d.Config.JWTSecret))

	app.Get("/metrics", metrics.Handler())
	BaseRoutes(app, d)
	app.Static("/uploads", d.Config.UploadDir)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, d)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", rateLimiter.GlobalRateLimiter(d.Config.RateLimitEnabled))

	log.Println("[INFO] Setting up ADMIN group (session + role check)...")
	admin := app.Group("/api/a",
		rateLimiter.GlobalRateLimiter(d.Config.RateLimitEnabled),
		authMiddleware.RequireSession(),
		authMiddleware.OnlyRoles(fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, "the admin API"), constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting admin routes...")
	routeDetails.SchoolAdminRoutes(admin, d)

	log.Println("[INFO] Mounting pages...")
	app.Use(authMiddleware.PageGate())
	routeDetails.PageRoutes(app, public, d)
}
