package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/realism"
	"github.com/alexanderramin/triad/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func evaluate(s domain.TriangleState) *contract.Evaluation {
	return service.BuildEvaluation(s, "", i18n.For(domain.LanguageEnglish), "http://localhost:8080/")
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "[░░░░░░░░░░]   0%"},
		{"half", 0.5, "[█████░░░░░]  50%"},
		{"full", 1, "[██████████] 100%"},
		{"over clamps", 1.7, "[██████████] 100%"},
		{"negative clamps", -0.2, "[░░░░░░░░░░]   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 10)))
		})
	}
}

func TestRenderSlider_ThumbPosition(t *testing.T) {
	assert.Equal(t, "▓────", stripANSI(RenderSlider(domain.SliderMin, 5, false)))
	assert.Equal(t, "────▓", stripANSI(RenderSlider(domain.SliderMax, 5, true)))
	assert.Equal(t, "──▓──", stripANSI(RenderSlider(47.5, 5, false)))
	assert.Equal(t, "▓────", stripANSI(RenderSlider(2, 5, false)), "values below the domain pin to the left")
}

func TestPlotCell_Vertices(t *testing.T) {
	col, row := PlotCell(domain.VertexQuality)
	assert.Equal(t, PlotWidth/2, col)
	assert.Equal(t, 0, row)

	col, row = PlotCell(domain.VertexTime)
	assert.Equal(t, 0, col)
	assert.Equal(t, PlotHeight-1, row)

	col, row = PlotCell(domain.VertexBudget)
	assert.Equal(t, PlotWidth-1, col)
	assert.Equal(t, PlotHeight-1, row)
}

func TestRenderTriangle_PlotsPointOnce(t *testing.T) {
	out := stripANSI(RenderTriangle(domain.Position(domain.DefaultState()), 100, [3]string{"Q", "T", "B"}))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, PlotHeight+2)
	assert.Equal(t, 1, strings.Count(out, "●"))
	assert.Equal(t, "Q", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "T"))
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "B"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"RULE", "DELTA"}, [][]string{
		{"ONE_EXTREME", "-20.0"},
		{"DOMINANT_FOCUSED", "+5.0"},
	}, 1))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "RULE              DELTA", lines[0])
	assert.Equal(t, "ONE_EXTREME       -20.0", lines[2])
	assert.Equal(t, "DOMINANT_FOCUSED   +5.0", lines[3])
}

func TestFormatEvaluation_Default(t *testing.T) {
	out := stripANSI(FormatEvaluation(evaluate(domain.DefaultState()), i18n.For(domain.LanguageEnglish)))

	assert.Contains(t, out, "PROJECT TRIANGLE")
	assert.Contains(t, out, "Time")
	assert.Contains(t, out, "Budget")
	assert.Contains(t, out, "Quality/Scope")
	assert.Contains(t, out, "Total: 100%")
	assert.Contains(t, out, "100%  ◆ 🦄 \"Unicorn\" Project")
	assert.Contains(t, out, "Beware of average results!")
	assert.Contains(t, out, "Quick summary:")
}

func TestFormatEvaluation_Czech(t *testing.T) {
	cs := i18n.For(domain.LanguageCzech)
	e := service.BuildEvaluation(testState(90, 5, 5), "", cs, "")
	out := stripANSI(FormatEvaluation(e, cs))

	assert.Contains(t, out, cs.T("time"))
	assert.Contains(t, out, cs.T("unrealistic"))
	assert.NotContains(t, out, "Quick summary:")
}

func TestFormatAnalysis_ListsAndFallbacks(t *testing.T) {
	en := i18n.For(domain.LanguageEnglish)

	out := stripANSI(FormatAnalysis(evaluate(testState(90, 5, 5)), en))
	assert.Contains(t, out, "WHY THE RATING IS 0% - DETAILED ANALYSIS")
	assert.Contains(t, out, "Extremely high time demands (90%)")
	assert.Contains(t, out, "URGENT: Reevaluate project requirements")

	// {40,30,30} produces no risks or impacts.
	out = stripANSI(FormatAnalysis(evaluate(testState(40, 30, 30)), en))
	assert.Contains(t, out, en.T(realism.KeyNoRisks))
	assert.Contains(t, out, en.T(realism.KeyNoImpacts))
	assert.Contains(t, out, en.T(realism.KeyMaintainBalance))
}

func TestFormatBreakdown(t *testing.T) {
	out := stripANSI(FormatBreakdown(realism.Evaluate(testState(90, 5, 5)).Adjustments))
	assert.Contains(t, out, "BALANCE_DEVIATION")
	assert.Contains(t, out, "ONE_EXTREME")
	assert.Contains(t, out, "-20.0")
	assert.Contains(t, out, "ONE_VERY_LOW")
}

func TestFormatShare(t *testing.T) {
	ok := stripANSI(FormatShare(contract.ShareResult{Link: "http://x/?time=50.0", Copied: true, Title: "Link copied!"}))
	assert.Contains(t, ok, "✔ Link copied!")
	assert.Contains(t, ok, "http://x/?time=50.0")

	failed := stripANSI(FormatShare(contract.ShareResult{Link: "http://x/", Title: "Failed to copy link"}))
	assert.Contains(t, failed, "✖ Failed to copy link")
}

func TestFormatPreferences(t *testing.T) {
	out := stripANSI(FormatPreferences(domain.Preferences{Language: domain.LanguageCzech, Theme: domain.ThemeDark},
		i18n.For(domain.LanguageEnglish)))
	assert.Contains(t, out, "LANGUAGE")
	assert.Contains(t, out, "cs")
	assert.Contains(t, out, "Dark")
}

func TestApplyTheme_SwapsPalette(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(domain.ThemeDark) })

	ApplyTheme(domain.ThemeLight)
	assert.Equal(t, domain.ThemeLight, ActiveTheme())
	light := ColorFg

	ApplyTheme(domain.ThemeDark)
	assert.NotEqual(t, light, ColorFg)
}

func TestTrendIndicator(t *testing.T) {
	assert.Equal(t, "↑", stripANSI(TrendIndicator(domain.TrendUp)))
	assert.Equal(t, "↓", stripANSI(TrendIndicator(domain.TrendDown)))
	assert.Equal(t, " ", TrendIndicator(domain.TrendNone))
}

func testState(t, b, q float64) domain.TriangleState {
	return domain.TriangleState{Time: t, Budget: b, Quality: q}
}

func TestRenderMarkdown_ConceptBlocks(t *testing.T) {
	src := "# Title\n\nSome **bold** text\nacross lines.\n\n> quoted\n\n- one\n- two\n\n| A | B |\n|---|---|\n| x | y |\n"
	out := stripANSI(RenderMarkdown(src, 0))

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Some bold text across lines.")
	assert.Contains(t, out, "│ quoted")
	assert.Contains(t, out, "• one")
	assert.Contains(t, out, "• two")
	assert.Contains(t, out, "A  B")
	assert.Contains(t, out, "x  y")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "|")
}
