package handler

import (
	"go-hardware-demo/internal/middleware"
	"go-hardware-demo/internal/service"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything SetupRoutes needs to register.
type Handlers struct {
	Auth      *AuthHandler
	Inventory *InventoryHandler
	Billing   *BillingHandler
	Dashboard *DashboardHandler
	Demo      *DemoHandler
}

func SetupRoutes(app *fiber.App, h Handlers, auth service.AuthService, wsHandler func(*websocket.Conn)) {
	app.Get("/health/live", h.Demo.Live)
	app.Get("/health/ready", h.Demo.Ready)

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	authGroup := api.Group("/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/validate-token", h.Auth.ValidateToken)
	authGroup.Post("/heartbeat", middleware.RequireAuth(auth), h.Auth.Heartbeat)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(auth))

	protected.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
	protected.Get("/dashboard/sales-trend", h.Dashboard.GetSalesTrend)

	protected.Get("/shop", h.Demo.GetShop)
	protected.Post("/demo/seed", h.Demo.Seed)
	protected.Post("/demo/reset", h.Demo.Reset)

	protected.Get("/items", h.Inventory.GetItems)
	protected.Get("/items/low-stock", h.Inventory.GetLowStock)
	protected.Get("/items/export", h.Inventory.ExportItems)
	protected.Get("/items/:id", h.Inventory.GetItem)
	protected.Post("/items", h.Inventory.CreateItem)
	protected.Put("/items/:id", h.Inventory.UpdateItem)
	protected.Delete("/items/:id", h.Inventory.DeleteItem)

	protected.Get("/movements", h.Inventory.GetMovements)
	protected.Post("/movements", h.Inventory.RecordMovement)
	protected.Post("/stock", h.Inventory.RecordStock)

	protected.Get("/customers", h.Billing.GetCustomers)
	protected.Post("/customers", h.Billing.CreateCustomer)

	protected.Get("/billing/options", h.Billing.GetOptions)
	protected.Post("/invoices/quote", h.Billing.QuoteInvoice)
	protected.Get("/invoices", h.Billing.GetInvoices)
	protected.Get("/invoices/:id", h.Billing.GetInvoice)
	protected.Get("/invoices/:id/export", h.Billing.ExportInvoice)
	protected.Post("/invoices", h.Billing.CreateInvoice)
	protected.Put("/invoices/:id/toggle-paid", h.Billing.TogglePaid)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHandler))
}
