package users

import (
	"context"
	"log"
	"strings"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admin/tables"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"

	"github.com/pkg/errors"
)

// SeedAdmin creates the admin account once; an existing email is left untouched.
func SeedAdmin(ctx context.Context, registry *tables.Registry, users authRepo.UserRepository, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		log.Println("[INFO] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	_, err := users.FindUserByEmail(ctx, email)
	if err == nil {
		log.Printf("[INFO] admin %s already exists, skipped", email)
		return nil
	}
	if !errors.Is(err, tables.ErrNotFound) {
		return errors.Wrap(err, "look up admin")
	}

	t, err := registry.Lookup("users")
	if err != nil {
		return err
	}
	if _, err := t.Create(ctx, map[string]any{
		"name":           "Administrator",
		"display_name":   "Administrator",
		"email":          email,
		"password":       password,
		"role":           constants.RoleAdmin,
		"email_verified": true,
	}); err != nil {
		return errors.Wrap(err, "create admin")
	}
	log.Printf("[INFO] seeded admin %s", email)
	return nil
}
