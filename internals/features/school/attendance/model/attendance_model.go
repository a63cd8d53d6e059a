// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	common "schoolhub_backend/internals/features/common/model"

	"github.com/google/uuid"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

var AttendanceStatuses = []string{AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused}

type AttendanceModel struct {
	common.BaseModel

	StudentID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendance_student_date,priority:1;column:student_id" json:"student_id" validate:"required"`
	Date        common.Day `gorm:"not null;index:idx_attendance_student_date,priority:2;column:date" json:"date"`
	Status      string     `gorm:"type:attendance_status;not null;default:'present';column:status" json:"status" validate:"oneof=present absent late excused"`
	ArrivalTime string     `gorm:"type:varchar(16);column:arrival_time" json:"arrival_time" validate:"omitempty,max=16"`
	Reason      string     `gorm:"type:text;column:reason" json:"reason"`
}

func (AttendanceModel) TableName() string { return "attendance" }

func (a *AttendanceModel) SetDefaultValues() {
	if a.Status == "" {
		a.Status = AttendancePresent
	}
}

func (a *AttendanceModel) UniqueKeys() []string { return nil }

func (a *AttendanceModel) Check() map[string][]string {
	if a.Date.IsZero() {
		return map[string][]string{"date": {"date is a required field"}}
	}
	return nil
}
