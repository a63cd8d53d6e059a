package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel carries the id and timestamp columns every table shares.
// JSON names match column names.
type BaseModel struct {
	ID      uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Created time.Time      `gorm:"column:created;not null;autoCreateTime" json:"created"`
	Updated time.Time      `gorm:"column:updated;not null;autoUpdateTime" json:"updated"`
	Deleted gorm.DeletedAt `gorm:"column:deleted;index" json:"deleted"`
}

func (b *BaseModel) Base() *BaseModel { return b }

// Stamp fills id and timestamps for a new row.
func (b *BaseModel) Stamp(now time.Time) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Created.IsZero() {
		b.Created = now
	}
	b.Updated = b.Created
}

// Touch moves updated forward; it never goes backwards.
func (b *BaseModel) Touch(now time.Time) {
	if now.Before(b.Updated) {
		now = b.Updated
	}
	b.Updated = now
}

// Record is what a persisted entity must provide to be served as an admin table.
type Record interface {
	TableName() string
	Base() *BaseModel
	SetDefaultValues()
	// UniqueKeys returns one normalized key per uniqueness constraint.
	UniqueKeys() []string
}

// Checker is implemented by records with rules the validator tags cannot express.
type Checker interface {
	Check() map[string][]string
}

// BaseColumns are managed by the store and never taken from a request body.
var BaseColumns = []string{"id", "created", "updated", "deleted"}
