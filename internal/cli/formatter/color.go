package formatter

import (
	"fmt"
	"strings"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the color used for a canonical status everywhere in
// the CLI.
func StatusStyle(s domain.CanonicalStatus) lipgloss.Style {
	switch s {
	case domain.StatusInProgress:
		return StyleGreen
	case domain.StatusPending:
		return StyleYellow
	case domain.StatusStalled:
		return StyleRed
	case domain.StatusCompleted:
		return StyleDim
	default:
		return StyleBlue
	}
}

// StatusPill renders a status with its marker, e.g. "● Em andamento".
func StatusPill(s domain.CanonicalStatus) string {
	marker := "○"
	switch s {
	case domain.StatusInProgress:
		marker = "●"
	case domain.StatusCompleted:
		marker = "✔"
	case domain.StatusStalled:
		marker = "■"
	case domain.StatusPending:
		marker = "◐"
	}
	return StatusStyle(s).Render(marker + " " + string(s))
}

// ModuleBadge renders the pt-BR label of a module; empty means all modules.
func ModuleBadge(m domain.AppModule) string {
	if m == "" {
		return StyleDim.Render("Todos os módulos")
	}
	return StylePurple.Render(m.Label())
}

// Header renders an upper-cased section title with a dim underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
