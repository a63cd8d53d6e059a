// file: internals/features/school/attendance/route/attendance_table.go
package route

import (
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/school/attendance/model"
)

func Definition() tables.Definition[model.AttendanceModel] {
	return tables.Definition[model.AttendanceModel]{
		Name:  "attendance",
		Title: "Attendance",
		Columns: []schema.Column{
			{Key: "student_id", Title: "Student ID"},
			{Key: "date", Title: "Date"},
			{Key: "status", Title: "Status"},
			{Key: "arrival_time", Title: "Arrived"},
			{Key: "reason", Title: "Reason"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "student_id", Label: "Student ID", Kind: schema.KindText, Required: true, Placeholder: "Student UUID"},
			{Name: "date", Label: "Date", Kind: schema.KindDate, Required: true},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options(model.AttendanceStatuses...)},
			{Name: "arrival_time", Label: "Arrival time", Kind: schema.KindText, Placeholder: "e.g. 8:55"},
			{Name: "reason", Label: "Reason", Kind: schema.KindTextarea},
		}},
		Initial: map[string]any{
			"status": model.AttendancePresent,
		},
	}
}

func Table(repo tables.Repository[model.AttendanceModel]) tables.Table {
	return tables.NewTable[model.AttendanceModel](repo, Definition())
}
