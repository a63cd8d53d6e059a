package helpers

import (
	"strings"

	helper "schoolhub_backend/internals/helpers"
)

const MinPasswordLength = 6

type RegisterInput struct {
	Name     string `json:"name" form:"name" validate:"required,notblank,min=2,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
}

func (in *LoginInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
}

func ValidateRegisterInput(in RegisterInput) map[string][]string {
	return helper.ValidateStruct(in)
}

func ValidateLoginInput(in LoginInput) map[string][]string {
	return helper.ValidateStruct(in)
}
