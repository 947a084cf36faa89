package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/invorya-panel/internal/application/audit"
	"github.com/jhoicas/invorya-panel/internal/application/auth"
	"github.com/jhoicas/invorya-panel/internal/application/inventory"
	"github.com/jhoicas/invorya-panel/internal/application/usecase"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	Recorder   *audit.Recorder
	Ledger     *inventory.StockLedger
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.SignIn)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Heartbeat de sesión (protegido)
	protected.Post("/auth/heartbeat", authHandler.Heartbeat)

	adminOnly := RequireRole(entity.RoleAdmin)

	// Products: lectura para cualquier autenticado, mutaciones solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categories: lectura para cualquier autenticado, alta solo admin
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Create)

	// Stock movements: rastro de auditoría, solo admin
	auditHandler := NewAuditHandler(deps.Recorder, deps.Ledger)
	protected.Get("/stock-movements", adminOnly, auditHandler.StockMovements)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Auditoría (solo admin)
	auditGroup := protected.Group("/audit", adminOnly)
	auditGroup.Get("/login-history", auditHandler.LoginHistory)
	auditGroup.Get("/activity", auditHandler.ActivityLogs)
}
