package templates

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for templates and resources.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "templates" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewTemplatesHandler(deps)

	router.Get("/templates", handler.List)
	router.Post("/templates", handler.Create)
	router.Post("/templates/mockup", handler.Mockup)
}
