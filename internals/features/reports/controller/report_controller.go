// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"log"

	"schoolhub_backend/internals/features/reports/service"
	helper "schoolhub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// GET /api/a/reports/dashboard
func (rc *ReportController) Dashboard(c *fiber.Ctx) error {
	out, err := rc.Service.Dashboard(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] dashboard report: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/a/reports/attendance
func (rc *ReportController) Attendance(c *fiber.Ctx) error {
	out, err := rc.Service.Attendance(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] attendance report: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/a/reports/attendance/students/:id
func (rc *ReportController) StudentAttendance(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	out, err := rc.Service.StudentAttendance(c.UserContext(), id)
	if err != nil {
		log.Printf("[ERROR] student attendance %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "ok", out)
}
