package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette. ApplyTheme swaps it for the light variant.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles, rebuilt by ApplyTheme.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

type palette struct {
	green, yellow, red, blue, purple, dim, fg, header string
}

var (
	darkPalette = palette{
		green: "#8ec07c", yellow: "#fabd2f", red: "#fb4934", blue: "#83a598",
		purple: "#d3869b", dim: "#928374", fg: "#ebdbb2", header: "#fe8019",
	}
	lightPalette = palette{
		green: "#427b58", yellow: "#b57614", red: "#9d0006", blue: "#076678",
		purple: "#8f3f71", dim: "#7c6f64", fg: "#3c3836", header: "#af3a03",
	}
)

var activeTheme = domain.ThemeDark

func init() {
	usePalette(darkPalette)
}

// ApplyTheme switches the palette. The system theme follows the terminal
// background.
func ApplyTheme(theme domain.Theme) {
	activeTheme = theme
	switch theme {
	case domain.ThemeLight:
		usePalette(lightPalette)
	case domain.ThemeSystem:
		if lipgloss.HasDarkBackground() {
			usePalette(darkPalette)
		} else {
			usePalette(lightPalette)
		}
	default:
		usePalette(darkPalette)
	}
}

// ActiveTheme returns the theme last passed to ApplyTheme.
func ActiveTheme() domain.Theme { return activeTheme }

func usePalette(p palette) {
	ColorGreen = lipgloss.Color(p.green)
	ColorYellow = lipgloss.Color(p.yellow)
	ColorRed = lipgloss.Color(p.red)
	ColorBlue = lipgloss.Color(p.blue)
	ColorPurple = lipgloss.Color(p.purple)
	ColorDim = lipgloss.Color(p.dim)
	ColorFg = lipgloss.Color(p.fg)
	ColorHeader = lipgloss.Color(p.header)

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// ScoreStyle colors a realism score by band. Unicorn scores are purple.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 90:
		return StylePurple
	case score >= 75:
		return StyleGreen
	case score >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// CategoryIndicator returns a colored category marker such as "● Problematic".
func CategoryIndicator(c domain.Category, title string) string {
	switch c {
	case domain.CategoryUnicorn:
		return StylePurple.Render("◆ " + title)
	case domain.CategoryHighlyRealistic:
		return StyleGreen.Render("● " + title)
	case domain.CategoryRealisticWithCompromises:
		return StyleYellow.Render("● " + title)
	case domain.CategoryProblematic:
		return StyleRed.Render("○ " + title)
	default:
		return StyleRed.Render("✖ " + title)
	}
}

// TrendIndicator renders the movement marker shown next to a slider.
func TrendIndicator(t domain.Trend) string {
	switch t {
	case domain.TrendUp:
		return StyleGreen.Render("↑")
	case domain.TrendDown:
		return StyleRed.Render("↓")
	case domain.TrendSteady:
		return StyleBlue.Render("●")
	default:
		return " "
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
