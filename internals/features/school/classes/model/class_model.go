// file: internals/features/school/classes/model/class_model.go
package model

import (
	common "schoolhub_backend/internals/features/common/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const (
	ClassStatusActive    = "active"
	ClassStatusInactive  = "inactive"
	ClassStatusCompleted = "completed"
	ClassStatusCancelled = "cancelled"

	DefaultCapacity = 30
)

type ClassModel struct {
	common.BaseModel

	Name        string     `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,notblank,max=255"`
	Description string     `gorm:"type:text;column:description" json:"description"`
	Grade       string     `gorm:"type:varchar(32);column:grade" json:"grade"`
	Section     string     `gorm:"type:varchar(32);column:section" json:"section"`
	Subject     string     `gorm:"type:varchar(120);column:subject" json:"subject"`
	Room        string     `gorm:"type:varchar(64);column:room" json:"room"`
	TeacherID   *uuid.UUID `gorm:"type:uuid;index;column:teacher_id" json:"teacher_id"`
	CourseID    *uuid.UUID `gorm:"type:uuid;index;column:course_id" json:"course_id"`

	// student ids
	Students pq.StringArray `gorm:"type:text[];column:students" json:"students"`
	Capacity int            `gorm:"not null;default:30;column:capacity" json:"capacity" validate:"min=0"`
	// expected to stay <= capacity; not enforced
	Enrolled int `gorm:"not null;default:0;column:enrolled" json:"enrolled" validate:"min=0"`

	Schedule  datatypes.JSON `gorm:"type:jsonb;column:schedule" json:"schedule"`
	Status    string         `gorm:"type:class_status;not null;default:'active';column:status" json:"status" validate:"oneof=active inactive completed cancelled"`
	StartDate common.Day     `gorm:"column:start_date" json:"start_date"`
	EndDate   common.Day     `gorm:"column:end_date" json:"end_date"`
}

func (ClassModel) TableName() string { return "classes" }

func (c *ClassModel) SetDefaultValues() {
	if c.Status == "" {
		c.Status = ClassStatusActive
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Students == nil {
		c.Students = pq.StringArray{}
	}
}

func (c *ClassModel) UniqueKeys() []string { return nil }

func (c *ClassModel) Check() map[string][]string {
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Time().Before(c.StartDate.Time()) {
		return map[string][]string{"end_date": {"end_date must not be before start_date"}}
	}
	return nil
}
