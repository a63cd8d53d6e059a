package service

import (
	"context"
	"testing"

	common "schoolhub_backend/internals/features/common/model"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	courseModel "schoolhub_backend/internals/features/school/courses/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	"schoolhub_backend/internals/stores"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportServiceOverMemoryStores(t *testing.T) {
	ctx := context.Background()
	st := stores.NewMemoryStores()
	svc := NewReportService(st)

	for i, email := range []string{"a@example.com", "b@example.com"} {
		s := &studentModel.StudentModel{Name: "S", Email: email, TuitionStatus: []string{"paid", "overdue"}[i]}
		s.SetDefaultValues()
		require.NoError(t, st.Students.Create(ctx, s))
	}
	inactive := false
	c := &courseModel.CourseModel{Code: "C1", Name: "C", IsActive: &inactive}
	c.SetDefaultValues()
	require.NoError(t, st.Courses.Create(ctx, c))

	me, other := uuid.New(), uuid.New()
	for _, a := range []attendanceModel.AttendanceModel{
		{StudentID: me, Date: common.MustDay("2024-05-01"), Status: "present"},
		{StudentID: me, Date: common.MustDay("2024-05-02"), Status: "absent"},
		{StudentID: other, Date: common.MustDay("2024-05-02"), Status: "late"},
	} {
		a := a
		require.NoError(t, st.Attendance.Create(ctx, &a))
	}

	d, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Students.Total)
	assert.Equal(t, 1, d.Students.UnpaidTuition)
	assert.Equal(t, 1, d.Courses.Total)
	assert.Equal(t, 0, d.Courses.Active)
	assert.Equal(t, 3, d.Attendance.Total)
	assert.Equal(t, 33, d.Attendance.Rate)
	assert.Equal(t, 67, d.Attendance.AttendedRate)

	r, err := svc.Attendance(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Bucket{{Key: "2024-05-01", Count: 1}, {Key: "2024-05-02", Count: 2}}, r.ByDate)

	sa, err := svc.StudentAttendance(ctx, me)
	require.NoError(t, err)
	assert.Equal(t, 2, sa.Stats.Total)
	assert.Equal(t, 50, sa.Stats.Rate)
	require.Len(t, sa.Recent, 2)
	assert.Equal(t, "2024-05-02", sa.Recent[0].Date.String())
}
