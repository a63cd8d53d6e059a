package details

import (
	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/features/pages/view"
	authService "schoolhub_backend/internals/features/users/auth/service"
	"schoolhub_backend/internals/stores"

	"gorm.io/gorm"
)

// Deps is built once in main and shared by every route mount.
type Deps struct {
	Config *configs.Config
	DB     *gorm.DB // nil with the memory driver
	Stores *stores.Stores
	Auth   *authService.AuthService
	View   *view.Renderer
}
