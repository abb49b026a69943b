package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/customers"
	"github.com/jhoicas/Facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/Facturacion-api/internal/application/invoices"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *dashboard.DashboardUseCase
	InvoiceUC   *invoices.InvoiceUseCase
	CustomerUC  *customers.CustomerUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dash := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash.Get("/revenue", dashboardHandler.Revenue)
	dash.Get("/latest-invoices", dashboardHandler.LatestInvoices)
	dash.Get("/cards", dashboardHandler.Cards)

	// Invoices (protegido)
	inv := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	inv.Get("/", invoiceHandler.List)
	inv.Get("/pages", invoiceHandler.Pages)
	inv.Get("/:id", invoiceHandler.GetByID)
	inv.Get("/:id/pdf", invoiceHandler.ReceiptPDF)
	inv.Post("/", invoiceHandler.Create)
	inv.Put("/:id", invoiceHandler.Update)
	inv.Delete("/:id", invoiceHandler.Delete)

	// Customers (protegido)
	cust := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	cust.Get("/", customerHandler.List)
	cust.Get("/table", customerHandler.Table)
}
