package seeds

import (
	"context"
	"time"

	"schoolhub_backend/internals/configs"
	schoolSeeds "schoolhub_backend/internals/seeds/schools"
	userSeeds "schoolhub_backend/internals/seeds/users"
	"schoolhub_backend/internals/stores"
)

// RunAllSeeds is safe to run on every start; each step skips data that exists.
func RunAllSeeds(ctx context.Context, st *stores.Stores, cfg *configs.Config) error {
	registry := st.Registry()
	if err := userSeeds.SeedAdmin(ctx, registry, st.UserRepository(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}
	return schoolSeeds.SeedSampleData(ctx, registry, time.Now())
}
