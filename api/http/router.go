package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ai-resume-backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. authMW is optional:
// when nil the API endpoints are open.
func Register(app *fiber.App, chat *handlers.ChatHandler, thread *handlers.ThreadHandler, health *handlers.HealthHandler, auth *handlers.AuthHandler, authMW fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)
	app.Get("/live", health.Live)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/auth/login", auth.Login)

	protected := func(h fiber.Handler) []fiber.Handler {
		if authMW == nil {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{authMW, h}
	}

	app.Get("/thread", protected(thread.List)...)
	app.Get("/thread/:id", protected(thread.Get)...)
	app.Delete("/thread/:id", protected(thread.Delete)...)

	app.Post("/chat", protected(chat.Chat)...)
	app.Post("/extract-text", protected(chat.ExtractText)...)
}
