// file: internals/features/school/schools/model/school_model.go
package model

import (
	common "schoolhub_backend/internals/features/common/model"
)

const (
	SchoolTypePublic  = "Public"
	SchoolTypePrivate = "Private"

	SchoolStatusActive   = "Active"
	SchoolStatusInactive = "Inactive"
)

type SchoolModel struct {
	common.BaseModel

	Name    string `gorm:"type:varchar(255);not null;column:name" json:"name" validate:"required,notblank,max=255"`
	Address string `gorm:"type:text;column:address" json:"address"`
	Email   string `gorm:"type:varchar(255);column:email" json:"email" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(32);column:phone" json:"phone"`
	Type    string `gorm:"type:school_type;not null;default:'Public';column:type" json:"type" validate:"oneof=Public Private"`
	Status  string `gorm:"type:school_status;not null;default:'Active';column:status" json:"status" validate:"oneof=Active Inactive"`
}

func (SchoolModel) TableName() string { return "schools" }

func (s *SchoolModel) SetDefaultValues() {
	if s.Type == "" {
		s.Type = SchoolTypePublic
	}
	if s.Status == "" {
		s.Status = SchoolStatusActive
	}
}

func (s *SchoolModel) UniqueKeys() []string { return nil }
