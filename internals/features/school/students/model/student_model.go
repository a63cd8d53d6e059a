// file: internals/features/school/students/model/student_model.go
package model

import (
	"strings"

	common "schoolhub_backend/internals/features/common/model"
)

const (
	StudentStatusActive    = "active"
	StudentStatusInactive  = "inactive"
	StudentStatusGraduated = "graduated"

	TuitionPaid    = "paid"
	TuitionPending = "pending"
	TuitionOverdue = "overdue"
)

type StudentModel struct {
	common.BaseModel

	Name   string `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,notblank,max=255"`
	Email  string `gorm:"type:varchar(255);not null;uniqueIndex:uq_students_email,where:deleted IS NULL;column:email" json:"email" validate:"required,email"`
	Phone  string `gorm:"type:varchar(32);column:phone" json:"phone"`
	Class  string `gorm:"type:varchar(64);column:class" json:"class"`
	Grade  string `gorm:"type:varchar(32);column:grade" json:"grade"`
	Status string `gorm:"type:student_status;not null;default:'active';column:status" json:"status" validate:"oneof=active inactive graduated"`

	EnrollmentDate common.Day `gorm:"column:enrollment_date" json:"enrollment_date"`
	Avatar         string     `gorm:"type:text;column:avatar" json:"avatar"`
	Address        string     `gorm:"type:text;column:address" json:"address"`
	ParentName     string     `gorm:"type:varchar(255);column:parent_name" json:"parent_name"`
	ParentPhone    string     `gorm:"type:varchar(32);column:parent_phone" json:"parent_phone"`

	TuitionFee    int    `gorm:"not null;default:0;column:tuition_fee" json:"tuition_fee" validate:"min=0"`
	TuitionStatus string `gorm:"type:tuition_status;not null;default:'pending';column:tuition_status" json:"tuition_status" validate:"oneof=paid pending overdue"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) SetDefaultValues() {
	s.Email = strings.TrimSpace(s.Email)
	if s.Status == "" {
		s.Status = StudentStatusActive
	}
	if s.TuitionStatus == "" {
		s.TuitionStatus = TuitionPending
	}
}

func (s *StudentModel) UniqueKeys() []string {
	return []string{"email:" + strings.TrimSpace(s.Email)}
}

// Unpaid is true while tuition is pending or overdue.
func (s *StudentModel) Unpaid() bool {
	return s.TuitionStatus == TuitionPending || s.TuitionStatus == TuitionOverdue
}
