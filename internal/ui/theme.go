package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done                                lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	Border                   lipgloss.Border
}

var current = ThemeNamed("classic")

var monoBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// ThemeNamed returns the theme called name. Unknown names get classic.
func ThemeNamed(name string) Theme {
	plain := lipgloss.NewStyle()
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:     "neon",
			Title:    plain.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    plain.Faint(true),
			Accent:   plain.Foreground(lipgloss.Color("14")),
			Success:  plain.Foreground(lipgloss.Color("10")),
			Error:    plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  plain.Foreground(lipgloss.Color("11")),
			Selected: plain.Bold(true).Reverse(true),
			Done:     plain.Faint(true).Strikethrough(true),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.RoundedBorder(),
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain, Done: plain,

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			Border: monoBorder,
		}
	default:
		return Theme{
			Name:     "classic",
			Title:    plain.Bold(true),
			Muted:    plain.Faint(true),
			Accent:   plain.Foreground(lipgloss.Color("12")),
			Success:  plain.Foreground(lipgloss.Color("42")),
			Error:    plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  plain.Foreground(lipgloss.Color("214")),
			Selected: plain.Bold(true).Reverse(true),
			Done:     plain.Faint(true).Strikethrough(true),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: "✔", SymPending: "•",
			Border: lipgloss.NormalBorder(),
		}
	}
}

func SetTheme(name string) { current = ThemeNamed(name) }

// Current exposes what renderers need.
func Current() Theme { return current }
