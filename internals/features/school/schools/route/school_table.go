// file: internals/features/school/schools/route/school_table.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/school/schools/model"
)

func Definition() tables.Definition[model.SchoolModel] {
	return tables.Definition[model.SchoolModel]{
		Name:  "schools",
		Title: "Schools",
		Columns: []schema.Column{
			{Key: "name", Title: "Name"},
			{Key: "address", Title: "Address"},
			{Key: "email", Title: "Email"},
			{Key: "phone", Title: "Phone"},
			{Key: "type", Title: "Type"},
			{Key: "status", Title: "Status"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "name", Label: "School name", Kind: schema.KindText, Required: true, Placeholder: "Enter school name"},
			{Name: "address", Label: "Address", Kind: schema.KindTextarea, Required: true, Placeholder: "Enter address"},
			{Name: "email", Label: "Email", Kind: schema.KindEmail, Required: true, Placeholder: "Enter email"},
			{Name: "phone", Label: "Phone", Kind: schema.KindText, Required: true, Placeholder: "Enter phone number"},
			{Name: "type", Label: "School type", Kind: schema.KindSelect, Options: schema.Options(model.SchoolTypePublic, model.SchoolTypePrivate)},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options(model.SchoolStatusActive, model.SchoolStatusInactive)},
		}},
		Initial: map[string]any{
			"type":   model.SchoolTypePublic,
			"status": model.SchoolStatusActive,
		},
	}
}

func Table(repo tables.Repository[model.SchoolModel]) tables.Table {
	return tables.NewTable[model.SchoolModel](repo, Definition())
}
