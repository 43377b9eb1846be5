package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestorpro/gestorpro-api/internal/application/auth"
	"github.com/gestorpro/gestorpro-api/internal/application/orders"
	"github.com/gestorpro/gestorpro-api/internal/application/reports"
	"github.com/gestorpro/gestorpro-api/internal/application/usecase"
	"github.com/gestorpro/gestorpro-api/internal/domain/entity"
	"github.com/gestorpro/gestorpro-api/internal/infrastructure/pdf"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ClientUC   *usecase.ClientUseCase
	ProductUC  *usecase.ProductUseCase
	ExpenseUC  *usecase.ExpenseUseCase
	SettingsUC *usecase.SettingsUseCase
	OrderUC    *orders.UseCase
	ReportUC   *reports.UseCase

	OrderPDF  *pdf.OrderGenerator
	ReportPDF *pdf.ReportGenerator

	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Área pública do cliente: acompanhamento do pedido pelo link
	// compartilhado, sem login. Registrada antes do grupo protegido para
	// não passar pelo middleware de autenticação.
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDF)
	api.Get("/public/orders/:id", orderHandler.PublicStatus)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Produtos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Pedidos/orçamentos
	ordersGroup := protected.Group("/orders")
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Patch("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Get("/:id/pdf", orderHandler.PDF)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Despesas
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/categories", expenseHandler.Categories)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Configurações (edição restrita a admin)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequireRole(entity.RoleAdmin), settingsHandler.Update)

	// Dashboard e relatórios: mesmo agregador, mesmos números
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF)
	protected.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/monthly", reportHandler.Monthly)
	reportsGroup.Get("/monthly/pdf", reportHandler.MonthlyPDF)
}
