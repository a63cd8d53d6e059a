package schools

import (
	"context"
	_ "embed"
	"log"
	"time"

	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/common/model"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	enrollmentModel "schoolhub_backend/internals/features/school/enrollments/model"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

//go:embed data_schools.json
var sampleJSON []byte

type sampleData struct {
	Schools  []map[string]any `json:"schools"`
	Teachers []map[string]any `json:"teachers"`
	Courses  []map[string]any `json:"courses"`
	Classes  []map[string]any `json:"classes"`
	Students []map[string]any `json:"students"`
}

// AttendanceDays is how many past school days each sample student gets.
const AttendanceDays = 5

// SeedSampleData fills an empty database with a small demo school. Tables
// that already hold rows are skipped.
func SeedSampleData(ctx context.Context, registry *tables.Registry, now time.Time) error {
	var data sampleData
	if err := sonic.Unmarshal(sampleJSON, &data); err != nil {
		return errors.Wrap(err, "decode sample data")
	}

	if _, err := seedRows(ctx, registry, "schools", data.Schools); err != nil {
		return err
	}
	teachers, err := seedRows(ctx, registry, "teachers", data.Teachers)
	if err != nil {
		return err
	}
	courses, err := seedRows(ctx, registry, "courses", data.Courses)
	if err != nil {
		return err
	}

	// Pair each class with the teacher and course at the same position.
	for i, c := range data.Classes {
		if i < len(teachers) {
			c["teacher_id"] = teachers[i]
		}
		if i < len(courses) {
			c["course_id"] = courses[i]
		}
	}
	classes, err := seedRows(ctx, registry, "classes", data.Classes)
	if err != nil {
		return err
	}
	students, err := seedRows(ctx, registry, "students", data.Students)
	if err != nil {
		return err
	}

	var enrollments, attendance []map[string]any
	for i, sid := range students {
		if len(classes) > 0 {
			enrollments = append(enrollments, map[string]any{
				"student_id":  sid,
				"class_id":    classes[i%len(classes)],
				"status":      enrollmentModel.EnrollmentApproved,
				"enrolled_at": now.UTC().Format(time.RFC3339),
			})
		}
		for d := 1; d <= AttendanceDays; d++ {
			attendance = append(attendance, map[string]any{
				"student_id": sid,
				"date":       now.AddDate(0, 0, -d).Format("2006-01-02"),
				"status":     attendanceModel.AttendanceStatuses[(i+d)%len(attendanceModel.AttendanceStatuses)],
			})
		}
	}
	if _, err := seedRows(ctx, registry, "enrollments", enrollments); err != nil {
		return err
	}
	if _, err := seedRows(ctx, registry, "attendance", attendance); err != nil {
		return err
	}
	return nil
}

// seedRows creates rows through the table so defaults and validation apply,
// and returns the new ids in input order.
func seedRows(ctx context.Context, registry *tables.Registry, name string, rows []map[string]any) ([]string, error) {
	t, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	existing, err := t.Rows(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", name)
	}
	if len(existing) > 0 {
		log.Printf("[INFO] %s already has %d rows, skipped", name, len(existing))
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, values := range rows {
		created, err := t.Create(ctx, values)
		if err != nil {
			return nil, errors.Wrapf(err, "seed %s", name)
		}
		ids = append(ids, recordID(created))
	}
	log.Printf("[INFO] seeded %d %s", len(ids), name)
	return ids, nil
}

func recordID(row any) string {
	if r, ok := row.(model.Record); ok {
		return r.Base().ID.String()
	}
	return ""
}
