package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panes/internal/domain/build"
)

// AboutRenderer renders the `panes about` card.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render draws a miniature of the workbench layout next to the build details.
func (r *AboutRenderer) Render(info build.Info) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border).
		Padding(0, 1).
		Render(r.details(info))

	return lipgloss.JoinHorizontal(lipgloss.Center, r.miniature(), "  ", card)
}

// miniature is the statement | editor/console split in block characters.
func (r *AboutRenderer) miniature() string {
	pane := lipgloss.NewStyle().Foreground(r.theme.Accent)
	divider := lipgloss.NewStyle().Foreground(r.theme.Muted)

	left := pane.Render("████")
	rows := []string{
		left + divider.Render("│") + pane.Render("███"),
		left + divider.Render("│") + pane.Render("███"),
		left + divider.Render("├") + divider.Render("───"),
		left + divider.Render("│") + pane.Render("███"),
	}
	return lipgloss.NewStyle().MarginLeft(2).Render(strings.Join(rows, "\n"))
}

func (r *AboutRenderer) details(info build.Info) string {
	version := info.Version
	if !info.IsRelease() {
		version = "dev"
	}
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	key := r.theme.Subtle.Width(7)
	val := r.theme.Highlight

	row := func(glyph, name, value string) string {
		return icon.Render(glyph) + " " + key.Render(name) + val.Render(value)
	}

	built := info.BuildDate
	if built == "" || built == "unknown" {
		built = "local build"
	}

	return strings.Join([]string{
		r.theme.Title.Render(IconPane + " panes " + version),
		row(IconCommit, "commit", info.Commit),
		row(IconInfo, "built", built),
		row(IconGo, "go", info.GoVersion),
		row(IconRepo, "repo", build.RepoURL()),
	}, "\n")
}
