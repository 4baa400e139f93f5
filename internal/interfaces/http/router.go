package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/reports"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	UserUC       *usecase.UserUseCase
	ReviewWeekUC *usecase.ReviewWeekUseCase
	ShiftUC      *usecase.ShiftUseCase
	DashboardUC  *usecase.DashboardUseCase
	RecordTx     *ledger.RecordTransactionUseCase
	ListTx       *ledger.ListTransactionsUseCase
	StockReport  *reports.StockReportUseCase
	Metrics      *metrics.Metrics
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Warehouse transactions (libro append-only)
	transactions := protected.Group("/warehouse-transactions")
	transactionHandler := NewTransactionHandler(deps.RecordTx, deps.ListTx, deps.Metrics)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Record)
	transactions.Get("/:id", transactionHandler.GetByID)

	// Personal (altas y bajas solo admin)
	userHandler := NewUserHandler(deps.UserUC)
	adminOnly := RequireRole(entity.RoleAdmin)
	protected.Post("/create-user", adminOnly, userHandler.Create)
	protected.Post("/delete-user", adminOnly, userHandler.Delete)
	protected.Get("/users", userHandler.List)

	// Notas de revisión semanal
	reviews := protected.Group("/review-weeks")
	reviewHandler := NewReviewWeekHandler(deps.ReviewWeekUC)
	reviews.Get("/", reviewHandler.List)
	reviews.Post("/", reviewHandler.Create)
	reviews.Delete("/:id", reviewHandler.Delete)

	// Tablero de horarios
	shifts := protected.Group("/shifts")
	shiftHandler := NewShiftHandler(deps.ShiftUC)
	shifts.Get("/", shiftHandler.List)
	shifts.Post("/", shiftHandler.Create)
	shifts.Delete("/:id", shiftHandler.Delete)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.StockReport)
	protected.Get("/dashboard", dashboardHandler.Summary)
	protected.Get("/reports/stock", dashboardHandler.StockReport)
}
