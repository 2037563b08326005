package main

import (
	"net/http"

	"go.uber.org/zap"

	"storeapi/internal/config"
	"storeapi/internal/handlers"
	"storeapi/internal/middleware"
	"storeapi/internal/repo"
	"storeapi/internal/service"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	itemRepo := repo.NewItemRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	roleRepo := repo.NewRoleRepository(db)
	userRepo := repo.NewUserRepository(db)

	itemService := service.NewItemService(itemRepo)
	categoryService := service.NewCategoryService(categoryRepo, itemRepo)
	roleService := service.NewRoleService(roleRepo, userRepo)
	userService := service.NewUserService(userRepo, roleRepo, cfg.DefaultRole)

	h := handlers.NewHandler(itemService, categoryService, roleService, userService, sugar, cfg)

	sugar.Infow("Starting server",
		"addr", cfg.BaseURL,
		"database", cfg.DatabaseDSN,
		"default_role", cfg.DefaultRole,
		"https", cfg.EnableHTTPS,
	)

	if cfg.EnableHTTPS {
		err = http.ListenAndServeTLS(cfg.BaseURL, cfg.TLSCertFile, cfg.TLSKeyFile, h.Router)
	} else {
		err = http.ListenAndServe(cfg.BaseURL, h.Router)
	}
	if err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
