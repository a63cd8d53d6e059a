package tables

import (
	"reflect"
	"strings"
	"sync"
)

// fieldIndex locates struct fields by JSON name and by gorm column name,
// descending into embedded structs without a JSON name.
type fieldIndex struct {
	byJSON   map[string][]int
	byColumn map[string][]int
}

var indexCache sync.Map // reflect.Type -> *fieldIndex

func indexOf(t reflect.Type) *fieldIndex {
	if v, ok := indexCache.Load(t); ok {
		return v.(*fieldIndex)
	}
	idx := &fieldIndex{byJSON: map[string][]int{}, byColumn: map[string][]int{}}
	walkFields(t, nil, idx)
	indexCache.Store(t, idx)
	return idx
}

func walkFields(t reflect.Type, prefix []int, idx *fieldIndex) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		path := append(append([]int(nil), prefix...), i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			walkFields(f.Type, path, idx)
			continue
		}
		if !f.IsExported() {
			continue
		}
		column := gormColumn(f.Tag.Get("gorm"))
		if name != "-" {
			if name == "" {
				name = f.Name
			}
			idx.byJSON[name] = path
			if column == "" {
				column = name
			}
		}
		if column != "" && column != "-" {
			idx.byColumn[column] = path
		}
	}
}

func gormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if kv := strings.SplitN(strings.TrimSpace(part), ":", 2); len(kv) == 2 && strings.EqualFold(kv[0], "column") {
			return kv[1]
		}
	}
	return ""
}

// copyColumns copies the named columns of src into dst.
func copyColumns(dst, src reflect.Value, idx *fieldIndex, columns []string) {
	for _, c := range columns {
		if path, ok := idx.byColumn[c]; ok {
			dst.FieldByIndex(path).Set(src.FieldByIndex(path))
		}
	}
}

// cloneSlices gives v its own backing arrays so callers cannot mutate stored rows.
func cloneSlices(v reflect.Value, idx *fieldIndex) {
	for _, path := range idx.byColumn {
		f := v.FieldByIndex(path)
		if f.Kind() != reflect.Slice || f.IsNil() {
			continue
		}
		cp := reflect.MakeSlice(f.Type(), f.Len(), f.Len())
		reflect.Copy(cp, f)
		f.Set(cp)
	}
}
