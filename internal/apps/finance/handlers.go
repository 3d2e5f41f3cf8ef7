package finance

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/apps"
	"github.com/gofiber/fiber/v2"
)

type LedgerResponse struct {
	FinancialSummary    appdata.FinancialSummary `json:"financialSummary"`
	NetProfit           float64                  `json:"netProfit"`
	IncomeTransactions  []appdata.Transaction    `json:"incomeTransactions"`
	ExpenseTransactions []appdata.Transaction    `json:"expenseTransactions"`
	IncomeByCategory    []appdata.CategoryTotal  `json:"incomeByCategory"`
	ExpensesByCategory  []appdata.CategoryTotal  `json:"expensesByCategory"`
}

func ledger(rec appdata.AppRecord) LedgerResponse {
	return LedgerResponse{
		FinancialSummary:    rec.FinancialSummary,
		NetProfit:           rec.NetProfit(),
		IncomeTransactions:  rec.IncomeTransactions,
		ExpenseTransactions: rec.ExpenseTransactions,
		IncomeByCategory:    appdata.CategoryTotals(rec.IncomeTransactions),
		ExpensesByCategory:  appdata.CategoryTotals(rec.ExpenseTransactions),
	}
}

type FinanceHandler struct {
	deps *apps.Deps
}

func NewFinanceHandler(deps *apps.Deps) *FinanceHandler {
	return &FinanceHandler{deps: deps}
}

// Ledger handles GET /api/p/finance
func (h *FinanceHandler) Ledger(c *fiber.Ctx) error {
	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.JSON(ledger(rec))
}

// AddIncome handles POST /api/p/finance/income
func (h *FinanceHandler) AddIncome(c *fiber.Ctx) error {
	return h.add(c, "add_income", h.deps.Data.AddIncome)
}

// AddExpense handles POST /api/p/finance/expenses
func (h *FinanceHandler) AddExpense(c *fiber.Ctx) error {
	return h.add(c, "add_expense", h.deps.Data.AddExpense)
}

func (h *FinanceHandler) add(c *fiber.Ctx, op string, fn func(context.Context, appdata.TransactionInput) error) error {
	var req appdata.TransactionInput
	if err := c.BodyParser(&req); err != nil {
		return apps.InvalidBody(c)
	}
	if err := fn(c.UserContext(), req); err != nil {
		return apps.MutationError(c, op, err)
	}

	rec, ok, err := apps.Record(c, h.deps)
	if !ok {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(ledger(rec))
}
