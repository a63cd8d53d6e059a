package service

import (
	"testing"
	"time"

	common "schoolhub_backend/internals/features/common/model"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	schoolModel "schoolhub_backend/internals/features/school/schools/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	teacherModel "schoolhub_backend/internals/features/school/teachers/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func rec(status, day string) attendanceModel.AttendanceModel {
	return attendanceModel.AttendanceModel{Status: status, Date: common.MustDay(day)}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(3, 0))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 100, Percent(4, 4))
}

func TestAttendanceStats(t *testing.T) {
	records := []attendanceModel.AttendanceModel{
		rec("present", "2024-05-01"),
		rec("present", "2024-05-02"),
		rec("absent", "2024-05-03"),
		rec("late", "2024-05-04"),
		rec("excused", "2024-05-05"),
	}
	s := AttendanceStats(records)
	assert.Equal(t, AttendanceSummary{Present: 2, Absent: 1, Late: 1, Excused: 1, Total: 5, Rate: 40, AttendedRate: 80}, s)
	assert.Equal(t, 40, AttendanceRate(records))

	assert.Equal(t, AttendanceSummary{}, AttendanceStats(nil))
	assert.Equal(t, 0, AttendanceRate(nil))
}

func TestRecentAttendance(t *testing.T) {
	records := make([]attendanceModel.AttendanceModel, 0, 12)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		records = append(records, attendanceModel.AttendanceModel{Status: "present", Date: common.NewDay(base.AddDate(0, 0, i))})
	}
	recent := RecentAttendance(records, 10)
	assert.Len(t, recent, 10)
	assert.Equal(t, "2024-05-12", recent[0].Date.String())
	assert.Equal(t, "2024-05-03", recent[9].Date.String())
	assert.Equal(t, "2024-05-01", records[0].Date.String())

	assert.Len(t, RecentAttendance(records[:3], 10), 3)
}

func TestGroupingHelpers(t *testing.T) {
	students := []studentModel.StudentModel{
		{Status: "active", TuitionStatus: "paid"},
		{Status: "active", TuitionStatus: "pending"},
		{Status: "graduated", TuitionStatus: "overdue"},
	}
	sum := SummarizeStudents(students)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Active)
	assert.Equal(t, 2, sum.UnpaidTuition)
	assert.Equal(t, map[string]int{"active": 2, "graduated": 1}, sum.ByStatus)

	buckets := GroupCount(students, func(s studentModel.StudentModel) string { return s.Status })
	assert.Equal(t, []Bucket{{Key: "active", Count: 2}, {Key: "graduated", Count: 1}}, buckets)

	teachers := []teacherModel.TeacherModel{{Experience: 3, Status: "active"}, {Experience: 4, Status: "on-leave"}}
	ts := SummarizeTeachers(teachers)
	assert.Equal(t, 4, ts.AverageExperience)
	assert.Equal(t, 1, ts.Active)
	assert.Equal(t, 0, AverageInt(nil))

	schools := []schoolModel.SchoolModel{{Type: "Public", Status: "Active"}, {Type: "Private", Status: "Inactive"}, {Type: "Public", Status: "Active"}}
	ss := SummarizeSchools(schools)
	assert.Equal(t, 2, ss.Public)
	assert.Equal(t, 1, ss.Private)
	assert.Equal(t, 2, ss.Active)
}

func TestClassFill(t *testing.T) {
	assert.Equal(t, 83, ClassFill(classModel.ClassModel{Enrolled: 25, Capacity: 30}))
	assert.Equal(t, 0, ClassFill(classModel.ClassModel{Enrolled: 5}))
	assert.Equal(t, 120, ClassFill(classModel.ClassModel{Enrolled: 36, Capacity: 30}))

	cs := SummarizeClasses([]classModel.ClassModel{{Enrolled: 15, Capacity: 30, Status: "active"}, {Enrolled: 30, Capacity: 30, Status: "completed"}})
	assert.Equal(t, 75, cs.AverageFill)
	assert.Equal(t, 45, cs.TotalEnrolled)
	assert.Equal(t, 1, cs.Active)
}

func TestFilters(t *testing.T) {
	assert.True(t, MatchSearch("", "anything"))
	assert.True(t, MatchSearch("  NGU ", "Nguyen Van A"))
	assert.False(t, MatchSearch("xyz", "Nguyen", "a@b.c"))

	id := uuid.New()
	s := studentModel.StudentModel{Name: "Mai", Email: "mai@example.com", Class: "10A1", Status: "active"}
	s.ID = id
	assert.True(t, StudentFilter{Q: id.String()[:8]}.Match(s))
	assert.True(t, StudentFilter{Q: "MAI", Class: "10A1", Status: "active"}.Match(s))
	assert.False(t, StudentFilter{Class: "11B2"}.Match(s))

	th := teacherModel.TeacherModel{Name: "Lan", Department: "Math", Status: "on-leave"}
	assert.True(t, TeacherFilter{Department: "Math"}.Match(th))
	assert.False(t, TeacherFilter{Status: "active"}.Match(th))

	sc := schoolModel.SchoolModel{Name: "North High", Address: "1 Main St", Type: "Public", Status: "Active"}
	assert.True(t, SchoolFilter{Q: "main st", Type: "Public"}.Match(sc))
	assert.False(t, SchoolFilter{Type: "Private"}.Match(sc))

	c := classModel.ClassModel{Name: "10A1", Subject: "Physics", Grade: "10", Status: "active"}
	assert.True(t, ClassFilter{Q: "lan"}.Match(c, "Lan"))
	assert.True(t, ClassFilter{Q: "phys", Grade: "10"}.Match(c, ""))
	assert.False(t, ClassFilter{Grade: "11"}.Match(c, ""))

	kept := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, kept)
}
