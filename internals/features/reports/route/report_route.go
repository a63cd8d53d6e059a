// file: internals/features/reports/route/report_route.go
package route

import (
	"schoolhub_backend/internals/features/reports/controller"

	"github.com/gofiber/fiber/v2"
)

// ReportRoutes must be mounted before the generic /:table routes.
func ReportRoutes(admin fiber.Router, rc *controller.ReportController) {
	r := admin.Group("/reports")
	r.Get("/dashboard", rc.Dashboard)
	r.Get("/attendance", rc.Attendance)
	r.Get("/attendance/students/:id", rc.StudentAttendance)
}
