package routes

import (
	"os"
	"time"

	database "schoolhub_backend/internals/databases"
	routeDetails "schoolhub_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App, d routeDetails.Deps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if d.DB == nil {
			dbStatus = "In-memory"
		} else if err := database.Ping(d.DB); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"driver":         d.Config.DBDriver,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
