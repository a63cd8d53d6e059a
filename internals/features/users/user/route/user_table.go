// file: internals/features/users/user/route/user_table.go
package route

import (
	"context"
	"strings"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admin/tables"
	"schoolhub_backend/internals/features/admin/tables/schema"
	authHelper "schoolhub_backend/internals/features/users/auth/helper"
	"schoolhub_backend/internals/features/users/user/model"

	"github.com/pkg/errors"
)

// The admin form takes a plain "password"; only its hash is stored.
const passwordField = "password"

func Definition() tables.Definition[model.UserModel] {
	return tables.Definition[model.UserModel]{
		Name:  "users",
		Title: "Users",
		Columns: []schema.Column{
			{Key: "name", Title: "Name"},
			{Key: "display_name", Title: "Display name"},
			{Key: "email", Title: "Email"},
			{Key: "role", Title: "Role"},
			{Key: "status", Title: "Status"},
			{Key: "membership", Title: "Membership"},
			{Key: "last_login", Title: "Last login"},
		},
		Form: schema.Form{Fields: []schema.Field{
			{Name: "name", Label: "Name", Kind: schema.KindText, Required: true, Placeholder: "Enter name"},
			{Name: "display_name", Label: "Display name", Kind: schema.KindText},
			{Name: "email", Label: "Email", Kind: schema.KindEmail, Required: true, Placeholder: "Enter email"},
			{Name: passwordField, Label: "Password", Kind: schema.KindPassword, Required: true, Placeholder: "At least 6 characters"},
			{Name: "role", Label: "Role", Kind: schema.KindSelect, Options: schema.Options(constants.AllRoles...)},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options(
				model.UserStatusActive, model.UserStatusPending, model.UserStatusSuspended)},
			{Name: "membership", Label: "Membership", Kind: schema.KindSelect, Options: schema.Options(
				model.MembershipFree, model.MembershipPremium, model.MembershipTrial)},
			{Name: "gender", Label: "Gender", Kind: schema.KindSelect, Options: schema.Options(
				model.GenderMale, model.GenderFemale, model.GenderOther)},
			{Name: "date_of_birth", Label: "Date of birth", Kind: schema.KindDate},
			{Name: "phone", Label: "Phone", Kind: schema.KindText},
			{Name: "bio", Label: "Bio", Kind: schema.KindTextarea},
			{Name: "avatar_url", Label: "Avatar URL", Kind: schema.KindText},
		}},
		Initial: map[string]any{
			"role":       constants.RoleGuest,
			"status":     model.UserStatusActive,
			"membership": model.MembershipFree,
			"gender":     model.GenderOther,
		},
		Virtual:     []string{passwordField},
		Prepare:     hashPassword,
		AvatarField: "avatar_url",
	}
}

func Table(repo tables.Repository[model.UserModel]) tables.Table {
	return tables.NewTable[model.UserModel](repo, Definition())
}

// hashPassword replaces a submitted password with its bcrypt hash. On update
// an empty password keeps the stored hash.
func hashPassword(_ context.Context, values map[string]any, row *model.UserModel, creating bool) ([]string, error) {
	raw, _ := values[passwordField].(string)
	if raw == "" && !creating {
		return nil, nil
	}
	if len(strings.TrimSpace(raw)) < authHelper.MinPasswordLength {
		return nil, &tables.ValidationError{Fields: map[string][]string{
			passwordField: {"Password must be at least 6 characters"},
		}}
	}
	hash, err := authHelper.HashPassword(raw)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	row.PasswordHash = hash
	return []string{"password_hash"}, nil
}
