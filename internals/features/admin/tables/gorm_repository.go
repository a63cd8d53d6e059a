package tables

import (
	"context"

	helper "schoolhub_backend/internals/helpers"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormRepository[T any] struct {
	DB *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{DB: db}
}

func (r *GormRepository[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.DB.WithContext(ctx).Order("created ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list rows")
	}
	return rows, nil
}

func (r *GormRepository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get row")
	}
	return &row, nil
}

func (r *GormRepository[T]) Create(ctx context.Context, row *T) error {
	return translate(r.DB.WithContext(ctx).Create(row).Error, "create row")
}

func (r *GormRepository[T]) Update(ctx context.Context, id uuid.UUID, row *T, columns []string) error {
	res := r.DB.WithContext(ctx).
		Model(row).
		Where("id = ?", id).
		Select(columns).
		Updates(row)
	if err := translate(res.Error, "update row"); err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete row")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if helper.IsUniqueViolation(err) {
		return errors.WithMessage(ErrDuplicate, err.Error())
	}
	return errors.Wrap(err, op)
}
