package details

import (
	authController "schoolhub_backend/internals/features/users/auth/controller"
	authRoute "schoolhub_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, d Deps) {
	ctrl := authController.NewAuthController(d.Auth, d.Config.CookieSecure)
	authRoute.AuthRoutes(app, ctrl, d.Config.RateLimitEnabled)
	authRoute.AuthPageRoutes(app, ctrl, d.Config.RateLimitEnabled)
}
