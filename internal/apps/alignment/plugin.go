package alignment

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for the daily alignment log.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "alignment" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewAlignmentHandler(deps)

	router.Get("/alignment/today", handler.Today)
	router.Get("/alignment/logs/:date", handler.GetLog)
	router.Put("/alignment/logs/:date", handler.SaveLog)
}
