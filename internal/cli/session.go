package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var growth, feeling string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in as an identity; pass both onboarding answers to sign up",
		Args:  cobra.ExactArgs(1),
		RunE: app.withHub(func(cmd *cobra.Command, args []string) error {
			email := strings.TrimSpace(args[0])
			if !strings.Contains(email, "@") {
				return writeErr(cmd, fmt.Errorf("not an email: %q", email))
			}
			ctx := cmd.Context()

			if growth != "" || feeling != "" {
				if growth == "" || feeling == "" {
					return writeErr(cmd, errors.New("--growth and --feeling go together"))
				}
				ob := appdata.Onboarding{GrowthArea: growth, SuccessFeeling: feeling}
				if err := app.hub.Data.SaveOnboarding(ctx, email, ob); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := app.hub.Identity.Login(ctx, email); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s ✨\n", app.hub.Identity.DisplayName())
			return nil
		}),
	}

	cmd.Flags().StringVar(&growth, "growth", "", "Where are you growing right now?")
	cmd.Flags().StringVar(&feeling, "feeling", "", "What does success feel like to you?")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: app.withHub(func(cmd *cobra.Command, args []string) error {
			if err := app.hub.Identity.Logout(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		}),
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		Args:  cobra.NoArgs,
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			app.field(w, "Identity", app.hub.Identity.Current())
			app.field(w, "Name", app.hub.Identity.DisplayName())
			if ob, ok := app.hub.Data.Onboarding(); ok {
				app.field(w, "Growing", ob.GrowthArea)
				app.field(w, "Success", ob.SuccessFeeling)
			}
			return nil
		}),
	}
}
