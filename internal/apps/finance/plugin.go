package finance

import (
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

// Plugin implements the apps.Plugin interface for the finance ledger.
type Plugin struct{}

func New() *Plugin {
	return &Plugin{}
}

func (p *Plugin) ID() string { return "finance" }

func (p *Plugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewFinanceHandler(deps)

	router.Get("/finance", handler.Ledger)
	router.Post("/finance/income", handler.AddIncome)
	router.Post("/finance/expenses", handler.AddExpense)
}
