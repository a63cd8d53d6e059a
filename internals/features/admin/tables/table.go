package tables

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/common/model"
	helper "schoolhub_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var codec = sonic.Config{UseNumber: true, CopyString: true}.Froze()

// PrepareFunc runs after the submitted values are merged onto row and before
// validation. It returns extra columns it wrote (e.g. a derived hash).
type PrepareFunc[T any] func(ctx context.Context, values map[string]any, row *T, creating bool) ([]string, error)

// Definition declares how one entity is exposed as an admin table.
type Definition[T any] struct {
	Name    string
	Title   string
	Columns []schema.Column
	Form    schema.Form
	Initial map[string]any
	// Virtual lists accepted body keys that are not columns; Prepare consumes them.
	Virtual     []string
	Prepare     PrepareFunc[T]
	AvatarField string
}

// Table is the type-erased face of a registered entity.
type Table interface {
	Name() string
	Descriptor() schema.Descriptor
	Model() any
	List(ctx context.Context) (any, error)
	Rows(ctx context.Context) ([]map[string]any, error)
	Create(ctx context.Context, values map[string]any) (any, error)
	Update(ctx context.Context, values map[string]any) (any, error)
	Delete(ctx context.Context, id string) error
	SetAvatar(ctx context.Context, id, url string) (any, error)
}

type table[T any, PT interface {
	*T
	model.Record
}] struct {
	repo     Repository[T]
	def      Definition[T]
	idx      *fieldIndex
	writable map[string]bool
	virtual  map[string]bool
	now      func() time.Time
}

// NewTable binds a repository to its definition. The type parameters pin the
// row type, so a table can only be registered with a matching store.
func NewTable[T any, PT interface {
	*T
	model.Record
}](repo Repository[T], def Definition[T]) Table {
	t := &table[T, PT]{
		repo:     repo,
		def:      def,
		idx:      indexOf(reflect.TypeOf((*T)(nil)).Elem()),
		writable: map[string]bool{},
		virtual:  map[string]bool{},
		now:      time.Now,
	}
	if t.def.Name == "" {
		t.def.Name = PT(new(T)).TableName()
	}
	for name := range t.idx.byJSON {
		t.writable[name] = true
	}
	for _, c := range model.BaseColumns {
		delete(t.writable, c)
	}
	for _, v := range def.Virtual {
		t.virtual[v] = true
	}
	return t
}

func (t *table[T, PT]) Name() string { return t.def.Name }

func (t *table[T, PT]) Model() any { return new(T) }

func (t *table[T, PT]) Descriptor() schema.Descriptor {
	initial := t.def.Initial
	if initial == nil {
		initial = map[string]any{}
	}
	return schema.Descriptor{
		Name:        t.def.Name,
		Title:       t.def.Title,
		Columns:     t.def.Columns,
		Fields:      t.def.Form.Fields,
		Initial:     initial,
		AvatarField: t.def.AvatarField,
	}
}

func (t *table[T, PT]) List(ctx context.Context) (any, error) {
	return t.repo.List(ctx)
}

// Rows returns the listing as generic maps keyed by column name.
func (t *table[T, PT]) Rows(ctx context.Context) ([]map[string]any, error) {
	rows, err := t.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Marshal(rows)
	if err != nil {
		return nil, errors.Wrap(err, "encode rows")
	}
	var out []map[string]any
	if err := codec.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode rows")
	}
	return out, nil
}

func (t *table[T, PT]) Create(ctx context.Context, values map[string]any) (any, error) {
	values = stripBase(values)
	if err := t.checkKeys(values); err != nil {
		return nil, err
	}
	if err := newValidationError(t.def.Form.CheckOptions(values)); err != nil {
		return nil, err
	}

	row := new(T)
	if err := t.assign(row, values); err != nil {
		return nil, err
	}
	PT(row).SetDefaultValues()
	if t.def.Prepare != nil {
		if _, err := t.def.Prepare(ctx, values, row, true); err != nil {
			return nil, err
		}
	}
	if err := t.validate(row); err != nil {
		return nil, err
	}

	PT(row).Base().Stamp(t.now())
	if err := t.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (t *table[T, PT]) Update(ctx context.Context, values map[string]any) (any, error) {
	id, err := parseID(values["id"])
	if err != nil {
		return nil, err
	}
	values = stripBase(values)
	if err := t.checkKeys(values); err != nil {
		return nil, err
	}
	if err := newValidationError(t.def.Form.CheckOptions(values)); err != nil {
		return nil, err
	}

	row, err := t.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.assign(row, values); err != nil {
		return nil, err
	}

	columns := make([]string, 0, len(values)+1)
	for k := range values {
		if t.writable[k] {
			columns = append(columns, k)
		}
	}
	if t.def.Prepare != nil {
		extra, err := t.def.Prepare(ctx, values, row, false)
		if err != nil {
			return nil, err
		}
		columns = append(columns, extra...)
	}
	if err := t.validate(row); err != nil {
		return nil, err
	}

	PT(row).Base().Touch(t.now())
	columns = append(columns, "updated")
	if err := t.repo.Update(ctx, id, row, columns); err != nil {
		return nil, err
	}
	return row, nil
}

func (t *table[T, PT]) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return t.repo.Delete(ctx, uid)
}

func (t *table[T, PT]) SetAvatar(ctx context.Context, id, url string) (any, error) {
	if t.def.AvatarField == "" {
		return nil, ErrNoAvatar
	}
	return t.Update(ctx, map[string]any{"id": id, t.def.AvatarField: url})
}

func (t *table[T, PT]) checkKeys(values map[string]any) error {
	var unknown []string
	for k := range values {
		if !t.writable[k] && !t.virtual[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return unknownFields(unknown)
	}
	return nil
}

// assign decodes each submitted value into its field so a bad value is
// reported against the right key.
func (t *table[T, PT]) assign(row *T, values map[string]any) error {
	rv := reflect.ValueOf(row).Elem()
	fieldErrs := map[string][]string{}
	for k, v := range values {
		path, ok := t.idx.byJSON[k]
		if !ok || !t.writable[k] {
			continue
		}
		raw, err := codec.Marshal(v)
		if err != nil {
			fieldErrs[k] = append(fieldErrs[k], "invalid value")
			continue
		}
		f := rv.FieldByIndex(path)
		fresh := reflect.New(f.Type())
		if err := codec.Unmarshal(raw, fresh.Interface()); err != nil {
			fieldErrs[k] = append(fieldErrs[k], fmt.Sprintf("%s has an invalid value", k))
			continue
		}
		f.Set(fresh.Elem())
	}
	return newValidationError(fieldErrs)
}

func (t *table[T, PT]) validate(row *T) error {
	errs := helper.ValidateStruct(row)
	if c, ok := any(row).(model.Checker); ok {
		errs = schema.Merge(errs, c.Check())
	}
	return newValidationError(errs)
}

func stripBase(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	for _, c := range model.BaseColumns {
		delete(out, c)
	}
	return out
}

func parseID(v any) (uuid.UUID, error) {
	s, _ := v.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, ErrMissingID
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidID, s)
	}
	return id, nil
}

// DecodeValues parses a request body into submitted values, keeping numbers
// exact until they are decoded into their field.
func DecodeValues(raw []byte) (map[string]any, error) {
	var values map[string]any
	if err := codec.Unmarshal(raw, &values); err != nil {
		return nil, errors.Wrap(err, "decode body")
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
