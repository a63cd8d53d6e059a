package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumDDL(t *testing.T) {
	ddl := EnumType{Name: "teacher_status", Values: []string{"active", "on-leave"}}.DDL()
	assert.Contains(t, ddl, "CREATE TYPE teacher_status AS ENUM ('active', 'on-leave')")
	assert.Contains(t, ddl, "duplicate_object")
}

func TestEnumsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Enums {
		assert.False(t, seen[e.Name], "duplicate enum %s", e.Name)
		assert.NotEmpty(t, e.Values)
		seen[e.Name] = true
	}
}

func TestPingNilDB(t *testing.T) {
	assert.NoError(t, Ping(nil))
}
