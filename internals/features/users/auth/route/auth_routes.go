// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	controller "schoolhub_backend/internals/features/users/auth/controller"
	rateLimiter "schoolhub_backend/internals/middlewares"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes mounts the JSON auth API under /api/auth.
func AuthRoutes(app *fiber.App, authController *controller.AuthController, limit bool) {
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(limit), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(limit), authController.Register)
	baseAuth.Post("/logout", authController.Logout)
	baseAuth.Get("/me", authMiddleware.RequireSession(), authController.Me)
}

// AuthPageRoutes mounts the form posts behind the login and signup pages.
func AuthPageRoutes(app *fiber.App, authController *controller.AuthController, limit bool) {
	app.Post("/login", rateLimiter.LoginRateLimiter(limit), authController.LoginForm)
	app.Post("/signup", rateLimiter.RegisterRateLimiter(limit), authController.SignupForm)
	app.Get("/logout", authController.LogoutPage)
}
