package settings

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for appearance settings.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "settings" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewSettingsHandler(deps)

	router.Get("/settings/theme", handler.GetTheme)
	router.Put("/settings/theme", handler.SetTheme)
	router.Put("/settings/theme/colors/:field", handler.SetColor)
	router.Get("/settings/theme.css", handler.Stylesheet)
}
