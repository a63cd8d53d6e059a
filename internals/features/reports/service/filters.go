// file: internals/features/reports/service/filters.go
package service

import (
	"strings"

	classModel "schoolhub_backend/internals/features/school/classes/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	teacherModel "schoolhub_backend/internals/features/school/teachers/model"
)

// MatchSearch is a case-insensitive substring match against any field.
// A blank query matches everything.
func MatchSearch(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func eqOrEmpty(want, got string) bool { return want == "" || want == got }

// Filter keeps the rows for which keep returns true.
func Filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

type StudentFilter struct {
	Q      string `query:"q"`
	Class  string `query:"class"`
	Status string `query:"status"`
}

func (f StudentFilter) Match(s studentModel.StudentModel) bool {
	return MatchSearch(f.Q, s.Name, s.Email, s.ID.String()) &&
		eqOrEmpty(f.Class, s.Class) &&
		eqOrEmpty(f.Status, s.Status)
}

type TeacherFilter struct {
	Q          string `query:"q"`
	Department string `query:"department"`
	Status     string `query:"status"`
}

func (f TeacherFilter) Match(t teacherModel.TeacherModel) bool {
	return MatchSearch(f.Q, t.Name, t.Email, t.ID.String()) &&
		eqOrEmpty(f.Department, t.Department) &&
		eqOrEmpty(f.Status, t.Status)
}

type SchoolFilter struct {
	Q      string `query:"q"`
	Type   string `query:"type"`
	Status string `query:"status"`
}

func (f SchoolFilter) Match(s schoolModel.SchoolModel) bool {
	return MatchSearch(f.Q, s.Name, s.Address, s.Email) &&
		eqOrEmpty(f.Type, s.Type) &&
		eqOrEmpty(f.Status, s.Status)
}

// ClassFilter searches class name and subject plus the teacher's name,
// which the caller resolves from teacher_id.
type ClassFilter struct {
	Q      string `query:"q"`
	Grade  string `query:"grade"`
	Status string `query:"status"`
}

func (f ClassFilter) Match(c classModel.ClassModel, teacherName string) bool {
	return MatchSearch(f.Q, c.Name, c.Subject, teacherName) &&
		eqOrEmpty(f.Grade, c.Grade) &&
		eqOrEmpty(f.Status, c.Status)
}
