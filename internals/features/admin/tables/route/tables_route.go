// file: internals/features/admin/tables/route/tables_route.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables/controller"

	"github.com/gofiber/fiber/v2"
)

// TablesRoutes mounts the generic CRUD endpoints on an admin group.
// Static paths are registered before the :table wildcard.
func TablesRoutes(admin fiber.Router, tc *controller.TablesController) {
	admin.Get("/tables", tc.ListTables)
	admin.Get("/:table/schema", tc.Schema)
	admin.Get("/:table", tc.List)
	admin.Post("/:table", tc.Create)
	admin.Put("/:table", tc.Update)
	admin.Delete("/:table", tc.Delete)
	admin.Post("/:table/:id/avatar", tc.UploadAvatar)
}
