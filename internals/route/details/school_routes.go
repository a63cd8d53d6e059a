package details

import (
	tablesController "schoolhub_backend/internals/features/admin/tables/controller"
	tablesRoute "schoolhub_backend/internals/features/admin/tables/route"
	reportController "schoolhub_backend/internals/features/reports/controller"
	reportRoute "schoolhub_backend/internals/features/reports/route"
	reportService "schoolhub_backend/internals/features/reports/service"

	"github.com/gofiber/fiber/v2"
)

/* ===================== ADMIN ===================== */
// Reports go first so /reports is not taken for a table name.
func SchoolAdminRoutes(admin fiber.Router, d Deps) {
	rc := reportController.NewReportController(reportService.NewReportService(d.Stores))
	reportRoute.ReportRoutes(admin, rc)

	tc := tablesController.NewTablesController(d.Stores.Registry(), d.Config.UploadDir)
	tablesRoute.TablesRoutes(admin, tc)
}
