package mentor

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for the AI mentor chat.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "mentor" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewMentorHandler(deps)

	router.Get("/mentor/greeting", handler.Greeting)
	router.Post("/mentor/chat", handler.Chat)
	router.Post("/mentor/compass", handler.Compass)
	router.Post("/mentor/note", handler.SaveNote)
}
