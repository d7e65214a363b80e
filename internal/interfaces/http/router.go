package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dahill/invoice-api/internal/application/auth"
	"github.com/dahill/invoice-api/internal/application/billing"
	"github.com/dahill/invoice-api/internal/application/dto"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *billing.CustomerUseCase
	InvoiceUC  *billing.InvoiceUseCase
	InvoicePDF *billing.PDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo lo de clientes y facturas pasa
// primero por la compuerta de autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Invoices (protegido). /stats va antes de /:id para que no lo capture
	// el parámetro.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/stats", invoiceHandler.Stats)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/download", invoiceHandler.Download)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// 404 para cualquier ruta no registrada.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Response{
			Success: false,
			Message: fmt.Sprintf("Route %s not found", c.OriginalURL()),
		})
	})
}
