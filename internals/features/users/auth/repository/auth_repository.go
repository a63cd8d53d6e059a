// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"strings"
	"time"

	"schoolhub_backend/internals/features/admin/tables"
	userModel "schoolhub_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserRepository is the slice of user persistence the auth flows need.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
	CreateUser(ctx context.Context, user *userModel.UserModel) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

/* ====================== GORM ====================== */

type GormUserRepository struct {
	*tables.GormRepository[userModel.UserModel]
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{tables.NewGormRepository[userModel.UserModel](db)}
}

func (r *GormUserRepository) FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := r.DB.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, tables.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	return &user, nil
}

func (r *GormUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	return r.Get(ctx, id)
}

func (r *GormUserRepository) CreateUser(ctx context.Context, user *userModel.UserModel) error {
	return r.Create(ctx, user)
}

func (r *GormUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

/* ====================== STORE-BACKED ====================== */

// StoreUserRepository serves auth from any tables.Repository; lookups by
// email scan the listing, which is fine for the in-memory driver.
type StoreUserRepository struct {
	Store tables.Repository[userModel.UserModel]
}

func NewStoreUserRepository(store tables.Repository[userModel.UserModel]) *StoreUserRepository {
	return &StoreUserRepository{Store: store}
}

func (r *StoreUserRepository) FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	users, err := r.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, tables.ErrNotFound
}

func (r *StoreUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	return r.Store.Get(ctx, id)
}

func (r *StoreUserRepository) CreateUser(ctx context.Context, user *userModel.UserModel) error {
	return r.Store.Create(ctx, user)
}

func (r *StoreUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	u := userModel.UserModel{LastLogin: &at}
	return r.Store.Update(ctx, id, &u, []string{"last_login"})
}
