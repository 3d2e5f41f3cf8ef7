package connections

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for platform connections.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "connections" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewConnectionsHandler(deps)

	router.Get("/connections", handler.List)
	router.Post("/connections/:platform", handler.Connect)
	router.Delete("/connections/:platform", handler.Disconnect)
}
