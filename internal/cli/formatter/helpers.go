package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/canteiro-app/canteiro/internal/period"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// DayLayout is the pt-BR calendar date layout used in all output.
const DayLayout = "02/01/2006"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return boxStyle.Render(content)
}

// RenderShare renders a bar for part/total like [███░░░░░░░]. A zero total
// renders an empty bar.
func RenderShare(part, total, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if total > 0 && part > 0 {
		filled = int(math.Round(float64(part) / float64(total) * float64(width)))
		filled = min(filled, width)
	}
	return "[" + strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled) + "]"
}

// FormatDay renders t as dd/mm/aaaa, or "--" for nil.
func FormatDay(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "--"
	}
	return t.Format(DayLayout)
}

// FormatWindow describes a DateWindow in pt-BR.
func FormatWindow(w period.DateWindow) string {
	switch {
	case w.Start != nil && w.End != nil:
		return fmt.Sprintf("%s a %s", FormatDay(w.Start), FormatDay(w.End))
	case w.Start != nil:
		return "desde " + FormatDay(w.Start)
	case w.End != nil:
		return "até " + FormatDay(w.End)
	default:
		return "todo o período"
	}
}

// RelativeDayFrom describes how far t is from now in whole calendar days.
func RelativeDayFrom(t, now time.Time) string {
	days := int(math.Round(period.StartOfDay(t).Sub(period.StartOfDay(now.In(t.Location()))).Hours() / 24))
	switch {
	case days == 0:
		return "hoje"
	case days == 1:
		return "amanhã"
	case days == -1:
		return "ontem"
	case days > 0:
		return fmt.Sprintf("em %dd", days)
	default:
		return fmt.Sprintf("há %dd", -days)
	}
}

// NeedDateStyled colors a need date by urgency: overdue or within two days
// is red, within a week yellow.
func NeedDateStyled(t *time.Time, now time.Time) string {
	if t == nil {
		return Dim("sem data")
	}
	days := period.StartOfDay(*t).Sub(period.StartOfDay(now.In(t.Location()))).Hours() / 24
	style := StyleFg
	switch {
	case days <= 2:
		style = StyleRed
	case days <= 7:
		style = StyleYellow
	}
	return style.Render(FormatDay(t)) + " " + Dim("("+RelativeDayFrom(*t, now)+")")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
