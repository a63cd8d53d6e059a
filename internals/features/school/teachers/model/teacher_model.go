// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"strings"

	common "schoolhub_backend/internals/features/common/model"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	TeacherStatusActive   = "active"
	TeacherStatusInactive = "inactive"
	TeacherStatusOnLeave  = "on-leave"
)

type TeacherModel struct {
	common.BaseModel

	Name       string         `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,notblank,max=255"`
	Email      string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_teachers_email,where:deleted IS NULL;column:email" json:"email" validate:"required,email"`
	Phone      string         `gorm:"type:varchar(32);column:phone" json:"phone"`
	Department string         `gorm:"type:varchar(120);column:department" json:"department"`
	Subjects   pq.StringArray `gorm:"type:text[];column:subjects" json:"subjects"`
	Status     string         `gorm:"type:teacher_status;not null;default:'active';column:status" json:"status" validate:"oneof=active inactive on-leave"`

	JoiningDate   common.Day `gorm:"column:joining_date" json:"joining_date"`
	Avatar        string     `gorm:"type:text;column:avatar" json:"avatar"`
	Address       string     `gorm:"type:text;column:address" json:"address"`
	Qualification string     `gorm:"type:varchar(255);column:qualification" json:"qualification"`
	Experience    int        `gorm:"not null;default:0;column:experience" json:"experience" validate:"min=0"`
	Salary        int        `gorm:"not null;default:0;column:salary" json:"salary" validate:"min=0"`

	Classes  pq.StringArray `gorm:"type:text[];column:classes" json:"classes"`
	Schedule datatypes.JSON `gorm:"type:jsonb;column:schedule" json:"schedule"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (t *TeacherModel) SetDefaultValues() {
	t.Email = strings.TrimSpace(t.Email)
	if t.Status == "" {
		t.Status = TeacherStatusActive
	}
	if t.Subjects == nil {
		t.Subjects = pq.StringArray{}
	}
	if t.Classes == nil {
		t.Classes = pq.StringArray{}
	}
}

func (t *TeacherModel) UniqueKeys() []string {
	return []string{"email:" + strings.TrimSpace(t.Email)}
}
