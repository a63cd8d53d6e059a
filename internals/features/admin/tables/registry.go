package tables

import "fmt"

// Registry maps table identifiers to their Table. Only registered names are routable.
type Registry struct {
	byName map[string]Table
	order  []string
}

func NewRegistry(tables ...Table) *Registry {
	r := &Registry{byName: map[string]Table{}}
	for _, t := range tables {
		r.Register(t)
	}
	return r
}

// Register panics on a duplicate name; registration happens once at startup.
func (r *Registry) Register(t Table) {
	if _, dup := r.byName[t.Name()]; dup {
		panic(fmt.Sprintf("tables: %q registered twice", t.Name()))
	}
	r.byName[t.Name()] = t
	r.order = append(r.order, t.Name())
}

func (r *Registry) Lookup(name string) (Table, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, ErrTableNotFound
	}
	return t, nil
}

// All returns tables in registration order.
func (r *Registry) All() []Table {
	out := make([]Table, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byName[n])
	}
	return out
}

func (r *Registry) Models() []any {
	out := make([]any, 0, len(r.order))
	for _, t := range r.All() {
		out = append(out, t.Model())
	}
	return out
}
