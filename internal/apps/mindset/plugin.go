package mindset

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for the journal and the
// mindset tools.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "mindset" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewMindsetHandler(deps)

	router.Get("/mindset/journal", handler.GetJournal)
	router.Put("/mindset/journal", handler.SaveJournal)
	router.Post("/mindset/reflection", handler.Reflection)
	router.Get("/mindset/affirmations", handler.Affirmations)
	router.Post("/mindset/soundscape", handler.Soundscape)
}
