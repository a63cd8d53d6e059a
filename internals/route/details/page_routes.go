package details

import (
	pagesController "schoolhub_backend/internals/features/pages/controller"
	pagesRoute "schoolhub_backend/internals/features/pages/route"
	reportService "schoolhub_backend/internals/features/reports/service"

	"github.com/gofiber/fiber/v2"
)

/* ===================== PUBLIC + PAGES ===================== */
func PageRoutes(app *fiber.App, public fiber.Router, d Deps) {
	pc := &pagesController.PagesController{
		App:          d.Config.App,
		CookieSecure: d.Config.CookieSecure,
		View:         d.View,
		Stores:       d.Stores,
		Registry:     d.Stores.Registry(),
		Reports:      reportService.NewReportService(d.Stores),
		Auth:         d.Auth,
	}
	pagesRoute.PublicRoutes(public, pc)
	pagesRoute.PageRoutes(app, pc)
}
