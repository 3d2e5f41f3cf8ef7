package cli

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/spf13/cobra"
)

func onboarding(app *App) *appdata.Onboarding {
	if ob, ok := app.hub.Data.Onboarding(); ok {
		return &ob
	}
	return nil
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Ask the mentor to read your platform numbers",
		Args:  cobra.NoArgs,
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			rec, _ := app.hub.Data.Snapshot()
			ob := onboarding(app)
			w := cmd.OutOrStdout()
			app.heading(w, "AI insights")
			app.markdown(w, app.hub.Advisor.Insights(cmd.Context(), rec.PlatformPerformance, ob))
			return nil
		}),
	}
}

func newIdeasCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ideas <topic...>",
		Short: "Brainstorm content ideas",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			app.heading(w, "Content ideas")
			app.markdown(w, app.hub.Advisor.Ideas(cmd.Context(), strings.Join(args, " "), onboarding(app)))
			return nil
		}),
	}
}
