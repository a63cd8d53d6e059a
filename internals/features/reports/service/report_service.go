// file: internals/features/reports/service/report_service.go
package service

import (
	"context"

	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	courseModel "schoolhub_backend/internals/features/school/courses/model"
	enrollmentModel "schoolhub_backend/internals/features/school/enrollments/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	teacherModel "schoolhub_backend/internals/features/school/teachers/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	"schoolhub_backend/internals/stores"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RecentLimit is how many records the per-student view lists.
const RecentLimit = 10

type ReportService struct {
	Stores *stores.Stores
}

func NewReportService(s *stores.Stores) *ReportService {
	return &ReportService{Stores: s}
}

type StudentSummary struct {
	Total         int            `json:"total"`
	Active        int            `json:"active"`
	UnpaidTuition int            `json:"unpaid_tuition"`
	ByStatus      map[string]int `json:"by_status"`
	ByTuition     map[string]int `json:"by_tuition_status"`
}

type TeacherSummary struct {
	Total             int            `json:"total"`
	Active            int            `json:"active"`
	AverageExperience int            `json:"average_experience"`
	ByStatus          map[string]int `json:"by_status"`
	ByDepartment      []Bucket       `json:"by_department"`
}

type SchoolSummary struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Public   int            `json:"public"`
	Private  int            `json:"private"`
	ByStatus map[string]int `json:"by_status"`
}

type ClassSummary struct {
	Total         int            `json:"total"`
	Active        int            `json:"active"`
	TotalEnrolled int            `json:"total_enrolled"`
	AverageFill   int            `json:"average_fill"`
	ByStatus      map[string]int `json:"by_status"`
}

type CourseSummary struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type Dashboard struct {
	Students    StudentSummary    `json:"students"`
	Teachers    TeacherSummary    `json:"teachers"`
	Schools     SchoolSummary     `json:"schools"`
	Classes     ClassSummary      `json:"classes"`
	Courses     CourseSummary     `json:"courses"`
	Enrollments map[string]int    `json:"enrollments_by_status"`
	Users       map[string]int    `json:"users_by_role"`
	Attendance  AttendanceSummary `json:"attendance"`
}

type AttendanceReport struct {
	Stats    AttendanceSummary `json:"stats"`
	ByStatus []Bucket          `json:"by_status"`
	ByDate   []Bucket          `json:"by_date"`
}

type StudentAttendance struct {
	StudentID uuid.UUID                         `json:"student_id"`
	Stats     AttendanceSummary                 `json:"stats"`
	Recent    []attendanceModel.AttendanceModel `json:"recent"`
}

func (s *ReportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	students, err := s.Stores.Students.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list students")
	}
	teachers, err := s.Stores.Teachers.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list teachers")
	}
	schools, err := s.Stores.Schools.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list schools")
	}
	classes, err := s.Stores.Classes.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list classes")
	}
	courses, err := s.Stores.Courses.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list courses")
	}
	enrollments, err := s.Stores.Enrollments.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list enrollments")
	}
	users, err := s.Stores.Users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	attendance, err := s.Stores.Attendance.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list attendance")
	}

	return &Dashboard{
		Students:    SummarizeStudents(students),
		Teachers:    SummarizeTeachers(teachers),
		Schools:     SummarizeSchools(schools),
		Classes:     SummarizeClasses(classes),
		Courses:     SummarizeCourses(courses),
		Enrollments: CountBy(enrollments, func(e enrollmentModel.EnrollmentModel) string { return e.Status }),
		Users:       CountBy(users, func(u userModel.UserModel) string { return u.Role }),
		Attendance:  AttendanceStats(attendance),
	}, nil
}

func (s *ReportService) Attendance(ctx context.Context) (*AttendanceReport, error) {
	records, err := s.Stores.Attendance.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list attendance")
	}
	return &AttendanceReport{
		Stats:    AttendanceStats(records),
		ByStatus: GroupCount(records, func(a attendanceModel.AttendanceModel) string { return a.Status }),
		ByDate:   GroupCount(records, func(a attendanceModel.AttendanceModel) string { return a.Date.String() }),
	}, nil
}

// StudentAttendance is the per-student view; the student itself is not looked up.
func (s *ReportService) StudentAttendance(ctx context.Context, studentID uuid.UUID) (*StudentAttendance, error) {
	records, err := s.Stores.Attendance.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list attendance")
	}
	mine := Filter(records, func(a attendanceModel.AttendanceModel) bool { return a.StudentID == studentID })
	return &StudentAttendance{
		StudentID: studentID,
		Stats:     AttendanceStats(mine),
		Recent:    RecentAttendance(mine, RecentLimit),
	}, nil
}

func SummarizeStudents(rows []studentModel.StudentModel) StudentSummary {
	out := StudentSummary{
		Total:     len(rows),
		ByStatus:  CountBy(rows, func(s studentModel.StudentModel) string { return s.Status }),
		ByTuition: CountBy(rows, func(s studentModel.StudentModel) string { return s.TuitionStatus }),
	}
	out.Active = out.ByStatus[studentModel.StudentStatusActive]
	for i := range rows {
		if rows[i].Unpaid() {
			out.UnpaidTuition++
		}
	}
	return out
}

func SummarizeTeachers(rows []teacherModel.TeacherModel) TeacherSummary {
	years := make([]int, len(rows))
	for i, t := range rows {
		years[i] = t.Experience
	}
	out := TeacherSummary{
		Total:             len(rows),
		AverageExperience: AverageInt(years),
		ByStatus:          CountBy(rows, func(t teacherModel.TeacherModel) string { return t.Status }),
		ByDepartment:      GroupCount(rows, func(t teacherModel.TeacherModel) string { return t.Department }),
	}
	out.Active = out.ByStatus[teacherModel.TeacherStatusActive]
	return out
}

func SummarizeSchools(rows []schoolModel.SchoolModel) SchoolSummary {
	byType := CountBy(rows, func(s schoolModel.SchoolModel) string { return s.Type })
	out := SchoolSummary{
		Total:    len(rows),
		Public:   byType[schoolModel.SchoolTypePublic],
		Private:  byType[schoolModel.SchoolTypePrivate],
		ByStatus: CountBy(rows, func(s schoolModel.SchoolModel) string { return s.Status }),
	}
	out.Active = out.ByStatus[schoolModel.SchoolStatusActive]
	return out
}

func SummarizeClasses(rows []classModel.ClassModel) ClassSummary {
	fills := make([]int, len(rows))
	out := ClassSummary{
		Total:    len(rows),
		ByStatus: CountBy(rows, func(c classModel.ClassModel) string { return c.Status }),
	}
	for i, c := range rows {
		fills[i] = ClassFill(c)
		out.TotalEnrolled += c.Enrolled
	}
	out.AverageFill = AverageInt(fills)
	out.Active = out.ByStatus[classModel.ClassStatusActive]
	return out
}

func SummarizeCourses(rows []courseModel.CourseModel) CourseSummary {
	out := CourseSummary{Total: len(rows)}
	for i := range rows {
		if rows[i].Active() {
			out.Active++
		}
	}
	return out
}
