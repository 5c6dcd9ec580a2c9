package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/backend/middleware"
)

// SetupRoutes mounts the whole API surface on app.
func (a *WebApp) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(middleware.RateLimitMiddleware(a.Config.RateLimit, time.Minute))

	api.Get("/health", a.HealthCheck)

	// Accounts and bindings.
	api.Post("/login", a.Login)
	api.Post("/bind", a.Bind)
	api.Get("/status", a.GetStatus)
	api.Get("/partners", a.ListPartners)
	api.Post("/avatar", a.SetAvatar)
	api.Post("/avatar/upload", a.UploadAvatar)
	api.Post("/avatar/delete", a.DeleteAvatar)

	// Consent handshake and draws.
	api.Post("/request-draw", a.RequestDraw)
	api.Post("/approve-draw", a.ApproveDraw)
	api.Post("/draw", a.Draw)
	api.Get("/draw-logs", a.ListDrawLogs)

	// Inventory.
	api.Get("/cards", a.ListCards)
	api.Get("/partner-cards", a.ListPartnerCards)
	api.Post("/use-card", a.UseCard)

	// Pool editing.
	api.Get("/card-pool", a.GetCardPool)
	api.Get("/custom-cards", a.ListCustomCards)
	api.Post("/custom-cards", a.AddCustomCard)
	api.Post("/custom-cards/delete", a.DeleteCustomCard)
	api.Get("/default-cards/disabled", a.ListDisabledDefaultCards)
	api.Post("/default-cards/disable", a.DisableDefaultCard)
	api.Post("/default-cards/enable", a.EnableDefaultCard)
}
