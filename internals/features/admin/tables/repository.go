package tables

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists rows of one entity. Implementations translate their
// store's errors into ErrNotFound and ErrDuplicate.
type Repository[T any] interface {
	// List returns every live row, oldest first.
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, row *T) error
	// Update writes only the named columns of row to the row with the given id.
	Update(ctx context.Context, id uuid.UUID, row *T, columns []string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
