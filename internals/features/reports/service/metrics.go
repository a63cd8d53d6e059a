// file: internals/features/reports/service/metrics.go
package service

import (
	"math"
	"sort"

	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	classModel "schoolhub_backend/internals/features/school/classes/model"
)

// Bucket is one bar of a chart.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// CountBy tallies rows by the key each one maps to.
func CountBy[T any](rows []T, key func(T) string) map[string]int {
	out := make(map[string]int)
	for _, r := range rows {
		out[key(r)]++
	}
	return out
}

// GroupCount is CountBy as buckets ordered by key.
func GroupCount[T any](rows []T, key func(T) string) []Bucket {
	counts := CountBy(rows, key)
	out := make([]Bucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, Bucket{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Percent is round(100*part/total); 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// AverageInt is the rounded mean; 0 for no values.
func AverageInt(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

type AttendanceSummary struct {
	Present      int `json:"present"`
	Absent       int `json:"absent"`
	Late         int `json:"late"`
	Excused      int `json:"excused"`
	Total        int `json:"total"`
	Rate         int `json:"rate"`
	AttendedRate int `json:"attended_rate"`
}

// AttendanceRate counts only "present" records toward the rate.
func AttendanceRate(records []attendanceModel.AttendanceModel) int {
	present := 0
	for _, r := range records {
		if r.Status == attendanceModel.AttendancePresent {
			present++
		}
	}
	return Percent(present, len(records))
}

// AttendanceStats also reports AttendedRate, where late and excused count as attended.
func AttendanceStats(records []attendanceModel.AttendanceModel) AttendanceSummary {
	var s AttendanceSummary
	for _, r := range records {
		switch r.Status {
		case attendanceModel.AttendancePresent:
			s.Present++
		case attendanceModel.AttendanceAbsent:
			s.Absent++
		case attendanceModel.AttendanceLate:
			s.Late++
		case attendanceModel.AttendanceExcused:
			s.Excused++
		}
	}
	s.Total = len(records)
	s.Rate = Percent(s.Present, s.Total)
	s.AttendedRate = Percent(s.Present+s.Late+s.Excused, s.Total)
	return s
}

// RecentAttendance returns at most n records, newest date first. Records on
// the same date keep the newer insert first.
func RecentAttendance(records []attendanceModel.AttendanceModel, n int) []attendanceModel.AttendanceModel {
	out := make([]attendanceModel.AttendanceModel, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Date.Time(), out[j].Date.Time()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].Created.After(out[j].Created)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ClassFill is how full a class is, in percent of capacity.
func ClassFill(c classModel.ClassModel) int {
	return Percent(c.Enrolled, c.Capacity)
}
