// file: internals/features/admin/tables/controller/tables_controller.go
package controller

import (
	"log"

	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	helper "schoolhub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type TablesController struct {
	Registry  *tables.Registry
	UploadDir string
}

func NewTablesController(registry *tables.Registry, uploadDir string) *TablesController {
	return &TablesController{Registry: registry, UploadDir: uploadDir}
}

// GET /api/a/tables
func (tc *TablesController) ListTables(c *fiber.Ctx) error {
	all := tc.Registry.All()
	out := make([]schema.Descriptor, 0, len(all))
	for _, t := range all {
		out = append(out, t.Descriptor())
	}
	return helper.JsonList(c, "ok", out)
}

// GET /api/a/:table/schema
func (tc *TablesController) Schema(c *fiber.Ctx) error {
	t, err := tc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return RespondError(c, err)
	}
	return helper.JsonOK(c, "ok", t.Descriptor())
}

// GET /api/a/:table
func (tc *TablesController) List(c *fiber.Ctx) error {
	t, err := tc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return RespondError(c, err)
	}
	rows, err := t.List(c.UserContext())
	if err != nil {
		return RespondError(c, err)
	}
	return helper.JsonList(c, "ok", rows)
}

// POST /api/a/:table
func (tc *TablesController) Create(c *fiber.Ctx) error {
	t, err := tc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return RespondError(c, err)
	}
	values, err := tables.DecodeValues(c.Body())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	row, err := t.Create(c.UserContext(), values)
	if err != nil {
		return RespondError(c, err)
	}
	return helper.JsonCreated(c, "Record created", row)
}

// PUT /api/a/:table  (body carries the id)
func (tc *TablesController) Update(c *fiber.Ctx) error {
	t, err := tc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return RespondError(c, err)
	}
	values, err := tables.DecodeValues(c.Body())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	row, err := t.Update(c.UserContext(), values)
	if err != nil {
		return RespondError(c, err)
	}
	return helper.JsonUpdated(c, "Record updated", row)
}

// DELETE /api/a/:table?id=<uuid>
func (tc *TablesController) Delete(c *fiber.Ctx) error {
	t, err := tc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return RespondError(c, err)
	}
	if err := t.Delete(c.UserContext(), c.Query("id")); err != nil {
		return RespondError(c, err)
	}
	return helper.JsonDeleted(c, "Record deleted", nil)
}

// POST /api/a/:table/:id/avatar  (multipart "file")
func (tc *TablesController) UploadAvatar(c *fiber.Ctx) error {
	t, err := tc.Registry.Lookup(c.Params("table"))
	if err != nil {
		return RespondError(c, err)
	}
	if t.Descriptor().AvatarField == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, tables.ErrNoAvatar.Error())
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}
	if fh.Size > helper.MaxUploadSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "file is too large")
	}

	url, err := helper.SaveAvatar(tc.UploadDir, t.Name(), fh)
	if err != nil {
		log.Printf("[WARN] avatar upload for %s/%s: %v", t.Name(), c.Params("id"), err)
		return helper.JsonError(c, fiber.StatusBadRequest, "file is not a supported image")
	}
	row, err := t.SetAvatar(c.UserContext(), c.Params("id"), url)
	if err != nil {
		return RespondError(c, err)
	}
	return helper.JsonUpdated(c, "Avatar updated", row)
}

// RespondError maps table errors onto the JSON error envelope.
func RespondError(c *fiber.Ctx, err error) error {
	status, msg := Status(err)
	var verr *tables.ValidationError
	if errors.As(err, &verr) {
		return helper.JsonValidationError(c, verr.Fields)
	}
	if status >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}
	return helper.JsonError(c, status, msg)
}

// Status picks the HTTP status and public message for a table error.
func Status(err error) (int, string) {
	var verr *tables.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusUnprocessableEntity, "validation failed"
	case errors.Is(err, tables.ErrTableNotFound):
		return fiber.StatusNotFound, "Table not found"
	case errors.Is(err, tables.ErrNotFound):
		return fiber.StatusNotFound, "Record not found"
	case errors.Is(err, tables.ErrDuplicate):
		return fiber.StatusConflict, "record already exists"
	case errors.Is(err, tables.ErrMissingID),
		errors.Is(err, tables.ErrInvalidID),
		errors.Is(err, tables.ErrUnknownField),
		errors.Is(err, tables.ErrNoAvatar):
		return fiber.StatusBadRequest, err.Error()
	}
	return fiber.StatusInternalServerError, "Internal server error"
}
