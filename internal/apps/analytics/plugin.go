package analytics

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for the analytics view.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "analytics" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewAnalyticsHandler(deps)

	router.Get("/analytics", handler.Overview)
	router.Post("/analytics/insights", handler.Insights)
	router.Post("/analytics/insights/note", handler.SaveInsight)
}
