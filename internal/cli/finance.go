package cli

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/spf13/cobra"
)

func newIncomeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income",
	}
	cmd.AddCommand(newTransactionAddCmd(app, "Record income", func(ctx context.Context, in appdata.TransactionInput) error {
		return app.hub.Data.AddIncome(ctx, in)
	}))
	return cmd
}

func newExpenseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expenses",
	}
	cmd.AddCommand(newTransactionAddCmd(app, "Record an expense", func(ctx context.Context, in appdata.TransactionInput) error {
		return app.hub.Data.AddExpense(ctx, in)
	}))
	return cmd
}

func newTransactionAddCmd(app *App, short string, add func(context.Context, appdata.TransactionInput) error) *cobra.Command {
	var in appdata.TransactionInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			if err := add(cmd.Context(), in); err != nil {
				return writeErr(cmd, err)
			}
			return app.printFinance(cmd)
		}),
	}

	cmd.Flags().Float64Var(&in.Amount, "amount", 0, "Amount in dollars")
	cmd.Flags().StringVar(&in.Description, "desc", "", "Description")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")
	return cmd
}

func newFinanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "finance",
		Short: "Show income, expenses and net profit",
		Args:  cobra.NoArgs,
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			return app.printFinance(cmd)
		}),
	}
}

func (app *App) printFinance(cmd *cobra.Command) error {
	rec, ok := app.hub.Data.Snapshot()
	if !ok {
		return writeErr(cmd, errNotLoggedIn)
	}
	w := cmd.OutOrStdout()

	app.heading(w, "Finances")
	app.field(w, "Income", money(rec.FinancialSummary.Income))
	app.field(w, "Expenses", money(rec.FinancialSummary.Expenses))
	app.field(w, "Net profit", app.accent(money(rec.NetProfit())))

	for _, group := range []struct {
		title string
		ts    []appdata.Transaction
	}{
		{"Income by category", rec.IncomeTransactions},
		{"Expenses by category", rec.ExpenseTransactions},
	} {
		totals := appdata.CategoryTotals(group.ts)
		if len(totals) == 0 {
			continue
		}
		app.heading(w, group.title)
		for _, t := range totals {
			app.field(w, t.Name, money(t.Value))
		}
	}
	return nil
}
