// file: internals/features/pages/controller/form_values.go
package controller

import (
	"encoding/json"
	"strconv"
	"strings"

	"schoolhub_backend/internals/features/admin/tables/schema"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// FormValues turns a posted admin form into the values a Table accepts.
// Blank inputs become null; a blank password or select is left out so the
// stored value stays.
func FormValues(c *fiber.Ctx, fields []schema.Field) (map[string]any, map[string][]string) {
	args := c.Request().PostArgs()
	values := map[string]any{}
	var errs map[string][]string

	for _, f := range fields {
		if f.Kind == schema.KindBoolean {
			v := strings.ToLower(string(args.Peek(f.Name)))
			values[f.Name] = v == "true" || v == "on" || v == "1"
			continue
		}
		if !args.Has(f.Name) {
			continue
		}
		raw := strings.TrimSpace(string(args.Peek(f.Name)))

		switch {
		case raw == "" && (f.Kind == schema.KindPassword || f.Kind == schema.KindSelect):
			continue
		case raw == "":
			values[f.Name] = nil
		case f.Kind == schema.KindNumber:
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				errs = addErr(errs, f.Name, f.Label+" must be a number")
				continue
			}
			values[f.Name] = json.Number(raw)
		case f.Kind == schema.KindDate:
			values[f.Name] = raw + "T00:00:00Z"
		case f.JSON:
			var doc any
			if err := sonic.UnmarshalString(raw, &doc); err != nil {
				errs = addErr(errs, f.Name, f.Label+" must be valid JSON")
				continue
			}
			values[f.Name] = doc
		default:
			values[f.Name] = raw
		}
	}
	return values, errs
}

// FieldValue renders a stored value back into its form input.
func FieldValue(f schema.Field, v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "true"
		}
		return ""
	case string:
		if f.Kind == schema.KindDate && len(x) >= 10 {
			return x[:10]
		}
		return x
	case json.Number:
		return x.String()
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		return ""
	}
	return string(raw)
}

func addErr(errs map[string][]string, field, msg string) map[string][]string {
	if errs == nil {
		errs = map[string][]string{}
	}
	errs[field] = append(errs[field], msg)
	return errs
}
