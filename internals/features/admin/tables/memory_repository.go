package tables

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"schoolhub_backend/internals/features/common/model"

	"github.com/google/uuid"
)

// MemoryRepository keeps rows in process. It backs tests and DB_DRIVER=memory.
// Deletes remove the row outright, so unique keys free up the same way the
// partial indexes allow in postgres.
type MemoryRepository[T any, PT interface {
	*T
	model.Record
}] struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*T
	seq  map[uuid.UUID]int64
	next int64
	idx  *fieldIndex
	now  func() time.Time
}

func NewMemoryRepository[T any, PT interface {
	*T
	model.Record
}]() *MemoryRepository[T, PT] {
	return &MemoryRepository[T, PT]{
		rows: map[uuid.UUID]*T{},
		seq:  map[uuid.UUID]int64{},
		idx:  indexOf(reflect.TypeOf((*T)(nil)).Elem()),
		now:  time.Now,
	}
}

func (r *MemoryRepository[T, PT]) clone(row *T) *T {
	cp := *row
	cloneSlices(reflect.ValueOf(&cp).Elem(), r.idx)
	return &cp
}

func (r *MemoryRepository[T, PT]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, *r.clone(row))
	}
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := PT(&out[i]).Base(), PT(&out[j]).Base()
		if bi.Created.Equal(bj.Created) {
			return r.seq[bi.ID] < r.seq[bj.ID]
		}
		return bi.Created.Before(bj.Created)
	})
	return out, nil
}

func (r *MemoryRepository[T, PT]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.clone(row), nil
}

func (r *MemoryRepository[T, PT]) Create(ctx context.Context, row *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := PT(row).Base()
	base.Stamp(r.now())
	if _, exists := r.rows[base.ID]; exists {
		return ErrDuplicate
	}
	if r.conflicts(uuid.Nil, PT(row).UniqueKeys()) {
		return ErrDuplicate
	}
	r.rows[base.ID] = r.clone(row)
	r.next++
	r.seq[base.ID] = r.next
	return nil
}

func (r *MemoryRepository[T, PT]) Update(ctx context.Context, id uuid.UUID, row *T, columns []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.rows[id]
	if !ok {
		return ErrNotFound
	}
	next := r.clone(stored)
	copyColumns(reflect.ValueOf(next).Elem(), reflect.ValueOf(row).Elem(), r.idx, columns)
	if r.conflicts(id, PT(next).UniqueKeys()) {
		return ErrDuplicate
	}
	r.rows[id] = next
	return nil
}

func (r *MemoryRepository[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.rows, id)
	delete(r.seq, id)
	return nil
}

func (r *MemoryRepository[T, PT]) conflicts(self uuid.UUID, keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for id, other := range r.rows {
		if id == self {
			continue
		}
		for _, k := range PT(other).UniqueKeys() {
			for _, want := range keys {
				if k == want {
					return true
				}
			}
		}
	}
	return false
}
