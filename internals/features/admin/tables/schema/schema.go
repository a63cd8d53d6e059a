package schema

import (
	"fmt"
	"strings"
)

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindPassword FieldKind = "password"
	KindNumber   FieldKind = "number"
	KindTextarea FieldKind = "textarea"
	KindSelect   FieldKind = "select"
	KindDate     FieldKind = "date"
	KindBoolean  FieldKind = "boolean"
)

// Column is one visible column of a listing.
type Column struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is one input of the create/edit form.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"type"`
	Required    bool      `json:"required,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	// JSON marks textarea input that holds a JSON document (lists, schedules).
	JSON        bool      `json:"json,omitempty"`
}

type Form struct {
	Fields []Field `json:"fields"`
}

// Descriptor is what a client needs to render a table and its form.
type Descriptor struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Columns     []Column       `json:"columns"`
	Fields      []Field        `json:"fields"`
	Initial     map[string]any `json:"initial_values"`
	AvatarField string         `json:"avatar_field,omitempty"`
}

func Options(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: Title(v)}
	}
	return out
}

// Title turns "on-leave" or "tuition_status" into "On Leave" / "Tuition Status".
func Title(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// CheckRequired reports required fields that are absent or blank in values.
func (f Form) CheckRequired(values map[string]any) map[string][]string {
	var errs map[string][]string
	for _, fld := range f.Fields {
		if !fld.Required || fld.Kind == KindBoolean {
			continue
		}
		if isBlank(values[fld.Name]) {
			if errs == nil {
				errs = map[string][]string{}
			}
			errs[fld.Name] = append(errs[fld.Name], fmt.Sprintf("%s is required", fld.Label))
		}
	}
	return errs
}

// CheckOptions rejects select values outside the declared options.
func (f Form) CheckOptions(values map[string]any) map[string][]string {
	var errs map[string][]string
	for _, fld := range f.Fields {
		if fld.Kind != KindSelect || len(fld.Options) == 0 {
			continue
		}
		v, ok := values[fld.Name].(string)
		if !ok || v == "" {
			continue
		}
		if !fld.HasOption(v) {
			if errs == nil {
				errs = map[string][]string{}
			}
			errs[fld.Name] = append(errs[fld.Name], fmt.Sprintf("%s must be one of %s", fld.Label, fld.optionList()))
		}
	}
	return errs
}

func (f Field) HasOption(v string) bool {
	for _, o := range f.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

func (f Field) optionList() string {
	vals := make([]string, len(f.Options))
	for i, o := range f.Options {
		vals[i] = o.Value
	}
	return strings.Join(vals, ", ")
}

func (f Form) Field(name string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// Merge folds b into a.
func Merge(a, b map[string][]string) map[string][]string {
	if len(b) == 0 {
		return a
	}
	if a == nil {
		a = map[string][]string{}
	}
	for k, v := range b {
		a[k] = append(a[k], v...)
	}
	return a
}
