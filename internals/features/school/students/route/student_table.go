// file: internals/features/school/students/route/student_table.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/school/students/model"
)

func Definition() tables.Definition[model.StudentModel] {
	return tables.Definition[model.StudentModel]{
		Name:  "students",
		Title: "Students",
		Columns: []schema.Column{
			{Key: "name", Title: "Name"},
			{Key: "email", Title: "Email"},
			{Key: "class", Title: "Class"},
			{Key: "grade", Title: "Grade"},
			{Key: "status", Title: "Status"},
			{Key: "tuition_status", Title: "Tuition"},
			{Key: "enrollment_date", Title: "Enrolled on"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "name", Label: "Full name", Kind: schema.KindText, Required: true, Placeholder: "Enter full name"},
			{Name: "email", Label: "Email", Kind: schema.KindEmail, Required: true, Placeholder: "Enter email"},
			{Name: "phone", Label: "Phone", Kind: schema.KindText},
			{Name: "class", Label: "Class", Kind: schema.KindText},
			{Name: "grade", Label: "Grade", Kind: schema.KindText},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options(
				model.StudentStatusActive, model.StudentStatusGraduated, model.StudentStatusInactive)},
			{Name: "enrollment_date", Label: "Enrollment date", Kind: schema.KindDate},
			{Name: "avatar", Label: "Avatar URL", Kind: schema.KindText},
			{Name: "address", Label: "Address", Kind: schema.KindTextarea},
			{Name: "parent_name", Label: "Parent name", Kind: schema.KindText},
			{Name: "parent_phone", Label: "Parent phone", Kind: schema.KindText},
			{Name: "tuition_fee", Label: "Tuition fee", Kind: schema.KindNumber},
			{Name: "tuition_status", Label: "Tuition status", Kind: schema.KindSelect, Options: schema.Options(
				model.TuitionPaid, model.TuitionPending, model.TuitionOverdue)},
		}},
		Initial: map[string]any{
			"status":         model.StudentStatusActive,
			"tuition_status": model.TuitionPending,
			"tuition_fee":    0,
		},
		AvatarField: "avatar",
	}
}

func Table(repo tables.Repository[model.StudentModel]) tables.Table {
	return tables.NewTable[model.StudentModel](repo, Definition())
}
