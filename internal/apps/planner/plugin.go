package planner

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for the content planner.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "planner" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewPlannerHandler(deps)

	router.Get("/planner/notes", handler.Notes)
	router.Put("/planner/notes/:day", handler.SetNote)
	router.Post("/planner/notes/today", handler.AddToday)
	router.Post("/planner/ideas", handler.Ideas)
}
