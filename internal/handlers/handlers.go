package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storeapi/internal/config"
	"storeapi/internal/middleware"
	"storeapi/internal/model"
	"storeapi/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires every route. Items can be read by any authenticated
// user; everything else that mutates state is admin-only; registration and
// login are public.
func NewHandler(
	itemService *service.ItemService,
	categoryService *service.CategoryService,
	roleService *service.RoleService,
	userService *service.UserService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	itemHandler := NewItemHandler(itemService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)
	roleHandler := NewRoleHandler(roleService, logger)
	userHandler := NewUserHandler(userService, logger, cfg)

	// Public
	r.Post("/user", userHandler.Register)
	r.Post("/user/login", userHandler.Login)

	// Any authenticated user
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/item", itemHandler.List)
		r.Get("/item/{id}", itemHandler.Get)
	})

	// Admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireRole(model.RoleAdmin))

		r.Post("/item", itemHandler.Create)
		r.Put("/item/{id}", itemHandler.Update)
		r.Patch("/item/{id}", itemHandler.Patch)
		r.Patch("/item/{id}/inventory", itemHandler.UpdateInventory)
		r.Delete("/item/{id}", itemHandler.Delete)

		r.Post("/category", categoryHandler.Create)
		r.Get("/category", categoryHandler.List)
		r.Get("/category/{id}", categoryHandler.Get)
		r.Put("/category/{id}", categoryHandler.Update)
		r.Delete("/category/{id}", categoryHandler.Delete)

		r.Post("/role", roleHandler.Create)
		r.Get("/role", roleHandler.List)
		r.Get("/role/{id}", roleHandler.Get)
		r.Put("/role/{id}", roleHandler.Update)
		r.Delete("/role/{id}", roleHandler.Delete)

		r.Get("/user", userHandler.List)
	})

	return &Handler{Router: r}
}
