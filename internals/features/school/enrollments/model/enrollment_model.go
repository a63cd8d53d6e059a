// file: internals/features/school/enrollments/model/enrollment_model.go
package model

import (
	"time"

	common "schoolhub_backend/internals/features/common/model"

	"github.com/google/uuid"
)

const (
	EnrollmentPending   = "pending"
	EnrollmentApproved  = "approved"
	EnrollmentRejected  = "rejected"
	EnrollmentCancelled = "cancelled"
)

type EnrollmentModel struct {
	common.BaseModel

	StudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_class,where:deleted IS NULL;column:student_id" json:"student_id" validate:"required"`
	ClassID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_class,where:deleted IS NULL;column:class_id" json:"class_id" validate:"required"`
	Status     string    `gorm:"type:enrollment_status;not null;default:'pending';column:status" json:"status" validate:"oneof=pending approved rejected cancelled"`
	EnrolledAt time.Time `gorm:"type:timestamptz;not null;default:now();column:enrolled_at" json:"enrolled_at"`
	Notes      string    `gorm:"type:text;column:notes" json:"notes"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (e *EnrollmentModel) SetDefaultValues() {
	if e.Status == "" {
		e.Status = EnrollmentPending
	}
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = time.Now()
	}
}

func (e *EnrollmentModel) UniqueKeys() []string {
	return []string{"student_class:" + e.StudentID.String() + "/" + e.ClassID.String()}
}
