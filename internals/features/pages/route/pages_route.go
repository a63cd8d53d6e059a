// file: internals/features/pages/route/pages_route.go
package route

import (
	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/pages/controller"

	"github.com/gofiber/fiber/v2"
)

// PageRoutes mounts the HTML pages. PageGate must already be installed.
func PageRoutes(app *fiber.App, pc *controller.PagesController) {
	app.Get("/", pc.Landing)
	app.Get(constants.LoginPath, pc.Login)
	app.Get(constants.SignupPath, pc.Signup)
	app.Get(constants.UnauthorizedPath, pc.Unauthorized)

	app.Get(constants.DashboardPath, pc.Dashboard)
	app.Get("/students", pc.Students)
	app.Get("/teachers", pc.Teachers)
	app.Get("/classes", pc.Classes)
	app.Get("/classroom", pc.Classes)
	app.Get("/schools", pc.Schools)
	app.Get("/attendance", pc.Attendance)
	app.Get("/reports", pc.ReportsPage)
	app.Get("/settings", pc.Settings)
	app.Post("/settings", pc.SaveSettings)
	app.Get("/profile", pc.Profile)

	admin := app.Group(constants.AdminPath)
	admin.Get("/", pc.AdminIndex)
	admin.Get("/:table", pc.AdminTable)
	admin.Post("/:table", pc.AdminSave)
	admin.Post("/:table/delete", pc.AdminDelete)
}

// PublicRoutes mounts the unauthenticated JSON endpoints under /api/public.
func PublicRoutes(public fiber.Router, pc *controller.PagesController) {
	public.Get("/app-config", pc.AppConfig)
}
