package tables

import (
	"context"
	"strings"
	"testing"

	"schoolhub_backend/internals/features/admin/tables/schema"
	"schoolhub_backend/internals/features/common/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	model.BaseModel
	Name   string         `gorm:"column:name" json:"name" validate:"required"`
	Code   string         `gorm:"column:code" json:"code" validate:"required"`
	Size   int            `gorm:"column:size" json:"size"`
	Status string         `gorm:"column:status" json:"status" validate:"oneof=on off"`
	Tags   pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	Secret string         `gorm:"column:secret" json:"-"`
}

func (widget) TableName() string { return "widgets" }

func (w *widget) SetDefaultValues() {
	if w.Status == "" {
		w.Status = "on"
	}
}

func (w *widget) UniqueKeys() []string { return []string{"code:" + strings.ToLower(w.Code)} }

func newWidgets() (Table, *MemoryRepository[widget, *widget]) {
	repo := NewMemoryRepository[widget]()
	def := Definition[widget]{
		Name:  "widgets",
		Title: "Widgets",
		Form: schema.Form{Fields: []schema.Field{
			{Name: "name", Label: "Name", Kind: schema.KindText, Required: true},
			{Name: "code", Label: "Code", Kind: schema.KindText, Required: true},
			{Name: "status", Label: "Status", Kind: schema.KindSelect, Options: schema.Options("on", "off")},
		}},
		Virtual: []string{"secret_plain"},
		Prepare: func(_ context.Context, values map[string]any, row *widget, _ bool) ([]string, error) {
			if s, ok := values["secret_plain"].(string); ok {
				row.Secret = strings.ToUpper(s)
				return []string{"secret"}, nil
			}
			return nil, nil
		},
	}
	return NewTable[widget](repo, def), repo
}

func TestCreateAppliesDefaultsAndStripsBaseColumns(t *testing.T) {
	tbl, _ := newWidgets()
	ctx := context.Background()

	out, err := tbl.Create(ctx, map[string]any{
		"id": "00000000-0000-0000-0000-000000000001", "created": "x",
		"name": "Bolt", "code": "B-1", "tags": []any{"a", "b"}, "secret_plain": "pw",
	})
	require.NoError(t, err)
	w := out.(*widget)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000001", w.ID.String())
	assert.Equal(t, "on", w.Status)
	assert.Equal(t, "PW", w.Secret)
	assert.Equal(t, pq.StringArray{"a", "b"}, w.Tags)
	assert.False(t, w.Created.IsZero())
}

func TestCreateRejectsUnknownAndInvalid(t *testing.T) {
	tbl, _ := newWidgets()
	ctx := context.Background()

	_, err := tbl.Create(ctx, map[string]any{"name": "x", "code": "c", "color": "red"})
	assert.True(t, errors.Is(err, ErrUnknownField))

	_, err = tbl.Create(ctx, map[string]any{"code": "c"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")

	_, err = tbl.Create(ctx, map[string]any{"name": "x", "code": "c", "size": "big"})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "size")

	_, err = tbl.Create(ctx, map[string]any{"name": "x", "code": "c", "status": "maybe"})
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "status")
}

func TestCreateDuplicate(t *testing.T) {
	tbl, _ := newWidgets()
	ctx := context.Background()

	_, err := tbl.Create(ctx, map[string]any{"name": "a", "code": "dup"})
	require.NoError(t, err)
	_, err = tbl.Create(ctx, map[string]any{"name": "b", "code": "DUP"})
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestUpdateWritesSubmittedColumnsOnly(t *testing.T) {
	tbl, repo := newWidgets()
	ctx := context.Background()

	out, err := tbl.Create(ctx, map[string]any{"name": "a", "code": "c1", "size": 3, "tags": []any{"x"}})
	require.NoError(t, err)
	created := out.(*widget)

	out, err = tbl.Update(ctx, map[string]any{"id": created.ID.String(), "size": 7})
	require.NoError(t, err)
	updated := out.(*widget)
	assert.Equal(t, 7, updated.Size)
	assert.Equal(t, "a", updated.Name)
	assert.False(t, updated.Updated.Before(created.Updated))

	stored, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Size)
	assert.Equal(t, pq.StringArray{"x"}, stored.Tags)
	assert.Equal(t, created.Created, stored.Created)
}

func TestUpdateErrors(t *testing.T) {
	tbl, repo := newWidgets()
	ctx := context.Background()

	_, err := tbl.Update(ctx, map[string]any{"name": "x"})
	assert.True(t, errors.Is(err, ErrMissingID))

	_, err = tbl.Update(ctx, map[string]any{"id": "not-a-uuid"})
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = tbl.Update(ctx, map[string]any{"id": "7b0b6f0e-8d7a-4a53-9d1e-2b6f1f0d5e11", "name": "x"})
	assert.True(t, errors.Is(err, ErrNotFound))
	rows, _ := repo.List(ctx)
	assert.Empty(t, rows)

	out, err := tbl.Create(ctx, map[string]any{"name": "a", "code": "c1"})
	require.NoError(t, err)
	_, err = tbl.Update(ctx, map[string]any{"id": out.(*widget).ID.String(), "name": ""})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestUpdateVirtualColumn(t *testing.T) {
	tbl, repo := newWidgets()
	ctx := context.Background()

	out, err := tbl.Create(ctx, map[string]any{"name": "a", "code": "c1"})
	require.NoError(t, err)
	id := out.(*widget).ID

	_, err = tbl.Update(ctx, map[string]any{"id": id.String(), "secret_plain": "new"})
	require.NoError(t, err)
	stored, _ := repo.Get(ctx, id)
	assert.Equal(t, "NEW", stored.Secret)
}

func TestDelete(t *testing.T) {
	tbl, _ := newWidgets()
	ctx := context.Background()

	out, err := tbl.Create(ctx, map[string]any{"name": "a", "code": "c1"})
	require.NoError(t, err)
	id := out.(*widget).ID.String()

	assert.True(t, errors.Is(tbl.Delete(ctx, ""), ErrMissingID))
	require.NoError(t, tbl.Delete(ctx, id))
	assert.True(t, errors.Is(tbl.Delete(ctx, id), ErrNotFound))

	// the unique key is free again
	_, err = tbl.Create(ctx, map[string]any{"name": "b", "code": "c1"})
	assert.NoError(t, err)
}

func TestRowsAndListOrder(t *testing.T) {
	tbl, _ := newWidgets()
	ctx := context.Background()

	for _, c := range []string{"c1", "c2", "c3"} {
		_, err := tbl.Create(ctx, map[string]any{"name": c, "code": c})
		require.NoError(t, err)
	}
	rows, err := tbl.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "c1", rows[0]["name"])
	assert.NotContains(t, rows[0], "secret")
	assert.Nil(t, rows[0]["deleted"])
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	tbl, repo := newWidgets()
	ctx := context.Background()

	out, err := tbl.Create(ctx, map[string]any{"name": "a", "code": "c1", "tags": []any{"x"}})
	require.NoError(t, err)
	id := out.(*widget).ID

	got, _ := repo.Get(ctx, id)
	got.Tags[0] = "mutated"
	again, _ := repo.Get(ctx, id)
	assert.Equal(t, "x", again.Tags[0])
}

func TestRegistry(t *testing.T) {
	tbl, _ := newWidgets()
	reg := NewRegistry(tbl)

	got, err := reg.Lookup("widgets")
	require.NoError(t, err)
	assert.Equal(t, "widgets", got.Name())

	_, err = reg.Lookup("gadgets")
	assert.Equal(t, ErrTableNotFound, err)

	assert.Len(t, reg.Models(), 1)
	assert.Panics(t, func() { reg.Register(tbl) })
}
