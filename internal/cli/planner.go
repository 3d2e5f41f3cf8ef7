package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Edit the content calendar",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <day> [text...]",
		Short: "Replace the note for a day of the month; no text clears it",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, appdata.ErrInvalidDay)
			}
			if err := app.hub.Data.UpdateCalendarNote(cmd.Context(), day, strings.Join(args[1:], " ")); err != nil {
				return writeErr(cmd, err)
			}
			return app.printNote(cmd, day)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "today <text...>",
		Short: "Add a bullet to today's note",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			if err := app.hub.Data.AddNoteForToday(cmd.Context(), strings.Join(args, " ")); err != nil {
				return writeErr(cmd, err)
			}
			return app.printNote(cmd, time.Now().Day())
		}),
	})

	return cmd
}

func (app *App) printNote(cmd *cobra.Command, day int) error {
	rec, _ := app.hub.Data.Snapshot()
	w := cmd.OutOrStdout()
	app.heading(w, fmt.Sprintf("Day %d", day))
	if note := rec.CalendarNotes[day]; note != "" {
		fmt.Fprintln(w, note)
	} else {
		fmt.Fprintln(w, "(empty)")
	}
	return nil
}

func newWinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "win",
		Short: "Celebrate wins",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <text...>",
		Short: "Record a win",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			if err := app.hub.Data.AddWin(cmd.Context(), strings.Join(args, " ")); err != nil {
				return writeErr(cmd, err)
			}
			rec, _ := app.hub.Data.Snapshot()
			w := cmd.OutOrStdout()
			app.heading(w, "Recent wins")
			for _, win := range rec.RecentWins(5) {
				fmt.Fprintln(w, "🎉 "+win.Text)
			}
			return nil
		}),
	})
	return cmd
}

func newConnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <platform...>",
		Short: "Connect a platform by its catalog name",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			if err := app.hub.Data.ConnectPlatform(cmd.Context(), strings.Join(args, " ")); err != nil {
				return writeErr(cmd, err)
			}
			return app.printPlatforms(cmd)
		}),
	}
}

func newDisconnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <platform...>",
		Short: "Disconnect a platform",
		Args:  cobra.MinimumNArgs(1),
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			if err := app.hub.Data.DisconnectPlatform(cmd.Context(), strings.Join(args, " ")); err != nil {
				return writeErr(cmd, err)
			}
			return app.printPlatforms(cmd)
		}),
	}
}

func (app *App) printPlatforms(cmd *cobra.Command) error {
	rec, _ := app.hub.Data.Snapshot()
	w := cmd.OutOrStdout()
	app.heading(w, "Platforms")
	for _, p := range app.hub.Platforms.All() {
		state := "-"
		if rec.ConnectedPlatforms[p.Name] {
			state = app.accent("connected")
		}
		app.field(w, p.Name, state)
	}
	app.field(w, "Followers", rec.AnalyticsSummary.TotalFollowers)
	return nil
}

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh platform numbers",
		Args:  cobra.NoArgs,
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			if err := app.hub.Data.SyncData(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			rec, _ := app.hub.Data.Snapshot()
			app.field(cmd.OutOrStdout(), "Followers", rec.AnalyticsSummary.TotalFollowers)
			return nil
		}),
	}
}

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Daily alignment log",
	}

	var (
		date string
		log  appdata.DailyLog
	)
	save := &cobra.Command{
		Use:   "save",
		Short: "Save the 0-5 ratings for a day, replacing any earlier entry",
		Args:  cobra.NoArgs,
		RunE: app.session(func(cmd *cobra.Command, args []string) error {
			log.Date = date
			if log.Date == "" {
				log.Date = time.Now().Format(appdata.DateLayout)
			}
			if err := app.hub.Data.SaveDailyLog(cmd.Context(), log); err != nil {
				return writeErr(cmd, err)
			}
			w := cmd.OutOrStdout()
			app.heading(w, "Alignment "+log.Date)
			r := log.Ratings
			for _, row := range []struct {
				label string
				v     int
			}{
				{"Branding", r.Branding},
				{"Business", r.Business},
				{"Personal", r.Personal},
				{"Financial", r.Financial},
				{"Mindset", r.Mindset},
			} {
				app.field(w, row.label, strings.Repeat("●", row.v)+strings.Repeat("○", 5-row.v))
			}
			if log.WinOfTheDay != "" {
				app.field(w, "Win", log.WinOfTheDay)
			}
			return nil
		}),
	}
	save.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")
	save.Flags().IntVar(&log.Ratings.Branding, "branding", 0, "Branding rating 0-5")
	save.Flags().IntVar(&log.Ratings.Business, "business", 0, "Business rating 0-5")
	save.Flags().IntVar(&log.Ratings.Personal, "personal", 0, "Personal rating 0-5")
	save.Flags().IntVar(&log.Ratings.Financial, "financial", 0, "Financial rating 0-5")
	save.Flags().IntVar(&log.Ratings.Mindset, "mindset", 0, "Mindset rating 0-5")
	save.Flags().StringVar(&log.WinOfTheDay, "win", "", "Win of the day")
	cmd.AddCommand(save)

	return cmd
}
