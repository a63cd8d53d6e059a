// file: internals/features/school/courses/route/course_table.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/school/courses/model"
)

func Definition() tables.Definition[model.CourseModel] {
	return tables.Definition[model.CourseModel]{
		Name:  "courses",
		Title: "Courses",
		Columns: []schema.Column{
			{Key: "code", Title: "Code"},
			{Key: "name", Title: "Course"},
			{Key: "description", Title: "Description"},
			{Key: "credits", Title: "Credits"},
			{Key: "duration", Title: "Duration (min)"},
			{Key: "is_active", Title: "Active"},
			{Key: "created", Title: "Created"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "code", Label: "Course code", Kind: schema.KindText, Required: true, Placeholder: "Enter course code"},
			{Name: "name", Label: "Course name", Kind: schema.KindText, Required: true, Placeholder: "Enter course name"},
			{Name: "description", Label: "Description", Kind: schema.KindTextarea},
			{Name: "credits", Label: "Credits", Kind: schema.KindNumber},
			{Name: "duration", Label: "Duration (minutes)", Kind: schema.KindNumber},
			{Name: "is_active", Label: "Active", Kind: schema.KindBoolean},
		}},
		Initial: map[string]any{
			"credits":   model.DefaultCredits,
			"duration":  model.DefaultDuration,
			"is_active": true,
		},
	}
}

func Table(repo tables.Repository[model.CourseModel]) tables.Table {
	return tables.NewTable[model.CourseModel](repo, Definition())
}
