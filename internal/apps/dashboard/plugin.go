package dashboard

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for the home dashboard.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "dashboard" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewDashboardHandler(deps)

	router.Get("/dashboard", handler.Summary)
	router.Post("/wins", handler.AddWin)
	router.Post("/sync", handler.Sync)
}
