// file: internals/features/school/teachers/route/teacher_table.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/school/teachers/model"
)

func Definition() tables.Definition[model.TeacherModel] {
	return tables.Definition[model.TeacherModel]{
		Name:  "teachers",
		Title: "Teachers",
		Columns: []schema.Column{
			{Key: "name", Title: "Name"},
			{Key: "email", Title: "Email"},
			{Key: "department", Title: "Department"},
			{Key: "subjects", Title: "Subjects"},
			{Key: "status", Title: "Status"},
			{Key: "experience", Title: "Experience (years)"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "name", Label: "Full name", Kind: schema.KindText, Required: true, Placeholder: "Enter full name"},
			{Name: "email", Label: "Email", Kind: schema.KindEmail, Required: true, Placeholder: "Enter email"},
			{Name: "phone", Label: "Phone", Kind: schema.KindText},
			{Name: "department", Label: "Department", Kind: schema.KindText},
			{Name: "subjects", Label: "Subjects", Kind: schema.KindTextarea, JSON: true, Placeholder: `["Math", "Physics"]`},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options(
				model.TeacherStatusActive, model.TeacherStatusOnLeave, model.TeacherStatusInactive)},
			{Name: "joining_date", Label: "Joining date", Kind: schema.KindDate},
			{Name: "avatar", Label: "Avatar URL", Kind: schema.KindText},
			{Name: "address", Label: "Address", Kind: schema.KindTextarea},
			{Name: "qualification", Label: "Qualification", Kind: schema.KindText},
			{Name: "experience", Label: "Experience (years)", Kind: schema.KindNumber},
			{Name: "salary", Label: "Salary", Kind: schema.KindNumber},
			{Name: "classes", Label: "Classes", Kind: schema.KindTextarea, JSON: true, Placeholder: `["10A1", "11B2"]`},
			{Name: "schedule", Label: "Schedule", Kind: schema.KindTextarea, JSON: true, Placeholder: `{"monday": ["08:00-09:30"]}`},
		}},
		Initial: map[string]any{
			"status":     model.TeacherStatusActive,
			"experience": 0,
			"salary":     0,
		},
		AvatarField: "avatar",
	}
}

func Table(repo tables.Repository[model.TeacherModel]) tables.Table {
	return tables.NewTable[model.TeacherModel](repo, Definition())
}
