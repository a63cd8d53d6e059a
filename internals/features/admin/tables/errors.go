package tables

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrTableNotFound = errors.New("Table not found")
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrMissingID     = errors.New("id is required")
	ErrInvalidID     = errors.New("invalid id")
	ErrUnknownField  = errors.New("unknown field")
	ErrNoAvatar      = errors.New("table has no avatar field")
)

// ValidationError carries per-field messages for a rejected row.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(fields map[string][]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func unknownFields(keys []string) error {
	sort.Strings(keys)
	return errors.Wrap(ErrUnknownField, strings.Join(keys, ", "))
}
