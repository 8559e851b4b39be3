package routes

import (
	"portal-api/internal/delivery/http/handler"
	"portal-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health  *handler.HealthHandler
	LCA     *handler.LCAHandler
	Copilot *handler.CopilotHandler
	Admin   *handler.AdminHandler
	WS      *ws.Handler

	// CopilotLimiter guards the copilot group when set.
	CopilotLimiter fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.WS != nil {
		r.WS.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")

	if r.LCA != nil {
		r.LCA.RegisterRoutes(api)
	}
	if r.Copilot != nil {
		var copilot fiber.Router
		if r.CopilotLimiter != nil {
			copilot = api.Group("/copilot", r.CopilotLimiter)
		} else {
			copilot = api.Group("/copilot")
		}
		r.Copilot.RegisterRoutes(copilot)
	}
	if r.Admin != nil {
		r.Admin.RegisterRoutes(api.Group("/admin"))
	}
}
