package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatDelta renders a signed score adjustment, red for penalties.
func FormatDelta(d float64) string {
	switch {
	case d < 0:
		return StyleRed.Render(fmt.Sprintf("%.1f", d))
	case d > 0:
		return StyleGreen.Render(fmt.Sprintf("+%.1f", d))
	default:
		return Dim("0.0")
	}
}

// Bullets renders one line per item with the given marker.
func Bullets(marker string, items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "  " + marker + " " + it
	}
	return strings.Join(lines, "\n")
}

// Wrap soft-wraps text to width using lipgloss, leaving it unchanged when
// width is not positive.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
