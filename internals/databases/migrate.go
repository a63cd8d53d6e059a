package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// EnumType is a postgres enum created before the tables that reference it.
type EnumType struct {
	Name   string
	Values []string
}

var Enums = []EnumType{
	{Name: "school_type", Values: []string{"Public", "Private"}},
	{Name: "school_status", Values: []string{"Active", "Inactive"}},
	{Name: "student_status", Values: []string{"active", "inactive", "graduated"}},
	{Name: "tuition_status", Values: []string{"paid", "pending", "overdue"}},
	{Name: "teacher_status", Values: []string{"active", "inactive", "on-leave"}},
	{Name: "class_status", Values: []string{"active", "inactive", "completed", "cancelled"}},
	{Name: "enrollment_status", Values: []string{"pending", "approved", "rejected", "cancelled"}},
	{Name: "attendance_status", Values: []string{"present", "absent", "late", "excused"}},
	{Name: "user_role", Values: []string{"guest", "user", "admin"}},
	{Name: "user_status", Values: []string{"active", "pending", "suspended"}},
	{Name: "user_membership", Values: []string{"free", "premium", "trial"}},
	{Name: "user_gender", Values: []string{"male", "female", "other"}},
}

func (e EnumType) DDL() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return fmt.Sprintf(
		`DO $$ BEGIN CREATE TYPE %s AS ENUM (%s); EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
		e.Name, strings.Join(quoted, ", "),
	)
}

// Migrate creates the enum types, then lets gorm create or alter the tables.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return errors.Wrap(err, "create extension pgcrypto")
	}
	for _, e := range Enums {
		if err := db.Exec(e.DDL()).Error; err != nil {
			return errors.Wrapf(err, "create enum %s", e.Name)
		}
	}
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	log.Printf("[INFO] migrated %d tables", len(models))
	return nil
}
