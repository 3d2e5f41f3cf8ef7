package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const wrapWidth = 80

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B7F9A"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E97A35"))
)

func (app *App) heading(w io.Writer, s string) {
	if app.Plain {
		fmt.Fprintln(w, s)
		return
	}
	fmt.Fprintln(w, headingStyle.Render(s))
}

// field prints one aligned "label  value" line.
func (app *App) field(w io.Writer, label, value string) {
	label = fmt.Sprintf("%-14s", label)
	if app.Plain {
		fmt.Fprintln(w, label+value)
		return
	}
	fmt.Fprintln(w, labelStyle.Render(label)+value)
}

func (app *App) accent(s string) string {
	if app.Plain {
		return s
	}
	return accentStyle.Render(s)
}

// markdown renders AI text for the terminal. Rendering errors fall back to
// the raw text.
func (app *App) markdown(w io.Writer, md string) {
	if app.Plain {
		fmt.Fprintln(w, strings.TrimSpace(md))
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		fmt.Fprintln(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintln(w, md)
		return
	}
	fmt.Fprint(w, out)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
