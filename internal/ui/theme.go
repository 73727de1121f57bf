package ui

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by SetTheme.
const (
	ThemeClassic = "classic"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)

// Theme bundles styles + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending, Done lipgloss.Style
	Selected                                            lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	SymFail                  string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
}

var (
	out          io.Writer
	themeName    string
	forceColor   bool
	disableColor bool

	renderer *lipgloss.Renderer
	current  Theme
)

func init() {
	out = os.Stdout
	themeName = ThemeClassic
	rebuild()
}

// Themes lists the known theme names.
func Themes() []string { return []string{ThemeClassic, ThemeNeon, ThemeMono} }

// IsTheme reports whether name is a known theme.
func IsTheme(name string) bool {
	return slices.Contains(Themes(), strings.ToLower(strings.TrimSpace(name)))
}

// SetOutput points color detection at w, the stream output is written to.
func SetOutput(w io.Writer) {
	out = w
	rebuild()
}

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	rebuild()
}

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsTheme(name) {
		name = ThemeClassic
	}
	themeName = name
	rebuild()
}

// Current exposes what renderers need.
func Current() Theme { return current }

// Renderer returns the renderer all theme styles were built with.
func Renderer() *lipgloss.Renderer { return renderer }

func rebuild() {
	renderer = lipgloss.NewRenderer(out)
	switch {
	case disableColor || themeName == ThemeMono:
		renderer.SetColorProfile(termenv.Ascii)
	case forceColor:
		renderer.SetColorProfile(termenv.ANSI256)
	}
	current = build(themeName, renderer)
}

func build(name string, r *lipgloss.Renderer) Theme {
	s := r.NewStyle
	switch name {
	case ThemeNeon:
		return Theme{
			Name:     name,
			Title:    s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    s().Foreground(lipgloss.Color("8")),
			Accent:   s().Foreground(lipgloss.Color("14")),
			Success:  s().Foreground(lipgloss.Color("10")),
			Error:    s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("11")),
			Done:     s().Faint(true).Strikethrough(true),
			Selected: s().Bold(true).Foreground(lipgloss.Color("13")),

			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			SymDone:      "✔",
			SymPending:   "•",
			SymFail:      "✖",
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
		}
	case ThemeMono:
		return Theme{
			Name:     name,
			Title:    s(),
			Muted:    s(),
			Accent:   s(),
			Success:  s(),
			Error:    s(),
			Pending:  s(),
			Done:     s(),
			Selected: s(),

			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			SymDone:      "x",
			SymPending:   "-",
			SymFail:      "!",
			Border:       lipgloss.ASCIIBorder(),
			BorderColor:  lipgloss.NoColor{},
		}
	default: // classic
		return Theme{
			Name:     ThemeClassic,
			Title:    s().Bold(true),
			Muted:    s().Faint(true),
			Accent:   s().Foreground(lipgloss.Color("12")),
			Success:  s().Foreground(lipgloss.Color("42")),
			Error:    s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  s().Foreground(lipgloss.Color("214")),
			Done:     s().Faint(true).Strikethrough(true),
			Selected: s().Bold(true).Reverse(true),

			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			SymDone:      "✔",
			SymPending:   "•",
			SymFail:      "✖",
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.Color("8"),
		}
	}
}
