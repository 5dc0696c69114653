package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triad/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	thumbBlock  = "▓"
)

// RenderProgress renders a score bar like [████░░░░]  45%. pct is in [0,1];
// the bar takes the color of the score band.
func RenderProgress(pct float64, width int) string {
	pct = max(0, min(1, pct))
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := ScoreStyle(int(pct * 100))
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderSlider draws a horizontal track for a slider value in the
// [SliderMin, SliderMax] domain with a thumb at the value.
func RenderSlider(value float64, width int, focused bool) string {
	if width < 3 {
		width = 3
	}
	ratio := (domain.Clamp(value) - domain.SliderMin) / (domain.SliderMax - domain.SliderMin)
	pos := min(int(ratio*float64(width-1)+0.5), width-1)

	track := strings.Repeat("─", pos) + thumbBlock + strings.Repeat("─", width-pos-1)
	if focused {
		return StyleHeader.Render(track)
	}
	return StyleDim.Render(track)
}
