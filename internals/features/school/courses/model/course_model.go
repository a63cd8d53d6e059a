// file: internals/features/school/courses/model/course_model.go
package model

import (
	"strings"

	common "schoolhub_backend/internals/features/common/model"
)

const (
	DefaultCredits  = 3
	DefaultDuration = 60
)

type CourseModel struct {
	common.BaseModel

	Code        string `gorm:"type:varchar(32);not null;uniqueIndex:uq_courses_code,where:deleted IS NULL;column:code" json:"code" validate:"required,notblank,max=32"`
	Name        string `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,notblank,max=255"`
	Description string `gorm:"type:text;column:description" json:"description"`
	Credits     int    `gorm:"not null;default:3;column:credits" json:"credits" validate:"min=0"`
	// minutes
	Duration int `gorm:"not null;default:60;column:duration" json:"duration" validate:"min=0"`
	// pointer so an explicit false survives defaulting
	IsActive *bool `gorm:"not null;default:true;column:is_active" json:"is_active"`
}

func (CourseModel) TableName() string { return "courses" }

func (c *CourseModel) SetDefaultValues() {
	c.Code = strings.TrimSpace(c.Code)
	if c.Credits == 0 {
		c.Credits = DefaultCredits
	}
	if c.Duration == 0 {
		c.Duration = DefaultDuration
	}
	if c.IsActive == nil {
		active := true
		c.IsActive = &active
	}
}

func (c *CourseModel) UniqueKeys() []string {
	return []string{"code:" + strings.TrimSpace(c.Code)}
}

func (c *CourseModel) Active() bool { return c.IsActive != nil && *c.IsActive }
