// file: internals/features/school/enrollments/route/enrollment_table.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/school/enrollments/model"
)

func Definition() tables.Definition[model.EnrollmentModel] {
	return tables.Definition[model.EnrollmentModel]{
		Name:  "enrollments",
		Title: "Enrollments",
		Columns: []schema.Column{
			{Key: "student_id", Title: "Student ID"},
			{Key: "class_id", Title: "Class ID"},
			{Key: "status", Title: "Status"},
			{Key: "enrolled_at", Title: "Enrolled at"},
			{Key: "notes", Title: "Notes"},
			{Key: "created", Title: "Created"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "student_id", Label: "Student ID", Kind: schema.KindText, Required: true, Placeholder: "Student UUID"},
			{Name: "class_id", Label: "Class ID", Kind: schema.KindText, Required: true, Placeholder: "Class UUID"},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options(
				model.EnrollmentPending, model.EnrollmentApproved, model.EnrollmentRejected, model.EnrollmentCancelled)},
			{Name: "enrolled_at", Label: "Enrolled at", Kind: schema.KindDate},
			{Name: "notes", Label: "Notes", Kind: schema.KindTextarea},
		}},
		Initial: map[string]any{
			"status": model.EnrollmentPending,
		},
	}
}

func Table(repo tables.Repository[model.EnrollmentModel]) tables.Table {
	return tables.NewTable[model.EnrollmentModel](repo, Definition())
}
