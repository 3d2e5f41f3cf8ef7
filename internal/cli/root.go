// Package cli is hubctl: the hub's services driven from a terminal against
// the same storage the server uses.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/hub"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("nobody is logged in; run `hubctl login <email>` first")

type App struct {
	Backend    string
	SQLitePath string
	Plain      bool

	cfg *config.Config
	hub *hub.Hub
}

type runFunc func(cmd *cobra.Command, args []string) error

func NewRootCmd() *cobra.Command {
	cfg := config.Load()
	app := &App{cfg: cfg}

	cmd := &cobra.Command{
		Use:          "hubctl",
		Short:        "Soulful Hub from the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start a session
  hubctl login maya@example.com

  # Record money coming in
  hubctl income add --amount 97 --desc "Digital planner" --category Products

  # Ask for a read on your platforms
  hubctl insights
`),
	}

	cmd.PersistentFlags().StringVar(&app.Backend, "backend", cfg.DBDriver, "Storage backend (sqlite|postgres|memory)")
	cmd.PersistentFlags().StringVar(&app.SQLitePath, "db", cfg.SQLitePath, "Path to the SQLite database")
	cmd.PersistentFlags().BoolVar(&app.Plain, "plain", false, "Plain text output without styling")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newIncomeCmd(app))
	cmd.AddCommand(newExpenseCmd(app))
	cmd.AddCommand(newFinanceCmd(app))
	cmd.AddCommand(newNoteCmd(app))
	cmd.AddCommand(newWinCmd(app))
	cmd.AddCommand(newConnectCmd(app))
	cmd.AddCommand(newDisconnectCmd(app))
	cmd.AddCommand(newSyncCmd(app))
	cmd.AddCommand(newLogCmd(app))
	cmd.AddCommand(newInsightsCmd(app))
	cmd.AddCommand(newIdeasCmd(app))

	return cmd
}

// withHub opens the hub for the duration of one command. The hub is closed
// on every path, including failed runs where cobra skips post-run hooks.
func (app *App) withHub(run runFunc) runFunc {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg := *app.cfg
		cfg.DBDriver = app.Backend
		cfg.SQLitePath = app.SQLitePath

		h, err := hub.Open(cmd.Context(), &cfg)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.hub = h
		defer func() {
			err = errors.Join(err, h.Close())
			app.hub = nil
		}()
		return run(cmd, args)
	}
}

// session is withHub for commands that need someone logged in.
func (app *App) session(run runFunc) runFunc {
	return app.withHub(func(cmd *cobra.Command, args []string) error {
		if !app.hub.Identity.LoggedIn() {
			return writeErr(cmd, errNotLoggedIn)
		}
		return run(cmd, args)
	})
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
