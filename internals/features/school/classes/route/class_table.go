// file: internals/features/school/classes/route/class_table.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/school/classes/model"
)

func Definition() tables.Definition[model.ClassModel] {
	return tables.Definition[model.ClassModel]{
		Name:  "classes",
		Title: "Classes",
		Columns: []schema.Column{
			{Key: "name", Title: "Class"},
			{Key: "description", Title: "Description"},
			{Key: "room", Title: "Room"},
			{Key: "capacity", Title: "Capacity"},
			{Key: "enrolled", Title: "Enrolled"},
			{Key: "status", Title: "Status"},
			{Key: "start_date", Title: "Starts"},
			{Key: "end_date", Title: "Ends"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "name", Label: "Class name", Kind: schema.KindText, Required: true, Placeholder: "Enter class name"},
			{Name: "description", Label: "Description", Kind: schema.KindTextarea},
			{Name: "grade", Label: "Grade", Kind: schema.KindText},
			{Name: "section", Label: "Section", Kind: schema.KindText},
			{Name: "subject", Label: "Subject", Kind: schema.KindText},
			{Name: "teacher_id", Label: "Teacher ID", Kind: schema.KindText, Placeholder: "Teacher UUID"},
			{Name: "course_id", Label: "Course ID", Kind: schema.KindText, Placeholder: "Course UUID"},
			{Name: "room", Label: "Room", Kind: schema.KindText},
			{Name: "capacity", Label: "Capacity", Kind: schema.KindNumber},
			{Name: "enrolled", Label: "Enrolled", Kind: schema.KindNumber},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options(
				model.ClassStatusActive, model.ClassStatusInactive, model.ClassStatusCompleted, model.ClassStatusCancelled)},
			{Name: "start_date", Label: "Start date", Kind: schema.KindDate},
			{Name: "end_date", Label: "End date", Kind: schema.KindDate},
			{Name: "students", Label: "Student IDs", Kind: schema.KindTextarea, JSON: true, Placeholder: `["<student uuid>"]`},
			{Name: "schedule", Label: "Schedule", Kind: schema.KindTextarea, JSON: true, Placeholder: `{"monday": ["08:00-09:30"]}`},
		}},
		Initial: map[string]any{
			"status":   model.ClassStatusActive,
			"capacity": model.DefaultCapacity,
			"enrolled": 0,
		},
	}
}

func Table(repo tables.Repository[model.ClassModel]) tables.Table {
	return tables.NewTable[model.ClassModel](repo, Definition())
}
