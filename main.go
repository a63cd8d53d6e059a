package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	database "schoolhub_backend/internals/databases"
	"schoolhub_backend/internals/features/pages/view"
	authService "schoolhub_backend/internals/features/users/auth/service"
	middlewares "schoolhub_backend/internals/middlewares"
	routes "schoolhub_backend/internals/route"
	routeDetails "schoolhub_backend/internals/route/details"
	"schoolhub_backend/internals/seeds"
	"schoolhub_backend/internals/stores"
)

func main() {
	cfg := configs.LoadEnv()

	app := middlewares.NewApp(cfg)

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, cfg)

	// Storage: postgres through gorm, or the in-memory driver for demos and tests.
	var db *gorm.DB
	var st *stores.Stores
	if cfg.DBDriver == "memory" {
		log.Println("[INFO] DB_DRIVER=memory, data is lost on restart")
		st = stores.NewMemoryStores()
	} else {
		var err error
		db, err = database.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		database.TunePool(db)
		st = stores.NewGormStores(db)
		if err := database.Migrate(db, st.Registry().Models()...); err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		database.WarmUpQueries(db)
	}

	if cfg.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seeds.RunAllSeeds(ctx, st, cfg); err != nil {
			log.Printf("[ERROR] seed: %v", err)
		}
		cancel()
	}

	routes.SetupRoutes(app, routeDetails.Deps{
		Config: cfg,
		DB:     db,
		Stores: st,
		Auth:   authService.NewAuthService(st.UserRepository(), cfg.JWTSecret, cfg.SessionTTL),
		View:   view.MustRenderer(),
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("[INFO] Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown, then close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
}
