package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/realism"
	"github.com/charmbracelet/lipgloss"
)

const sliderWidth = 24

// FormatSlider renders one slider row: label, track, percentage, intensity
// and trend.
func FormatSlider(fv contract.FactorView, labelWidth int, focused bool) string {
	label := fv.Label
	if focused {
		label = StyleHeader.Render("› " + label)
	} else {
		label = StyleFg.Render("  " + label)
	}
	label += strings.Repeat(" ", max(labelWidth+2-lipgloss.Width(label), 0))

	return fmt.Sprintf("%s  %s  %s  %s %s",
		label,
		RenderSlider(fv.Value, sliderWidth, focused),
		Bold(fmt.Sprintf("%3d%%", fv.Percent)),
		Dim(fmt.Sprintf("%-9s", fv.IntensityLabel)),
		TrendIndicator(fv.Trend),
	)
}

// FormatSliders renders the three sliders with the total line. focus is the
// highlighted factor, empty for none.
func FormatSliders(e *contract.Evaluation, loc realism.Localizer, focus domain.Factor) string {
	width := 0
	for _, fv := range e.Factors {
		width = max(width, lipgloss.Width(fv.Label))
	}
	lines := make([]string, 0, len(e.Factors)+2)
	for _, fv := range e.Factors {
		lines = append(lines, FormatSlider(fv, width, fv.Factor == focus))
	}
	lines = append(lines, "", Dim(fmt.Sprintf("%s %d%%", loc.T("total"), e.Total)))
	return strings.Join(lines, "\n")
}

// FormatScore renders the realism block: bar, category, description and the
// quick summary.
func FormatScore(e *contract.Evaluation, loc realism.Localizer) string {
	var b strings.Builder
	b.WriteString(Header(loc.T("project_realism")))
	b.WriteString("\n")
	b.WriteString(RenderProgress(float64(e.Score)/100, 30))
	b.WriteString("  ")
	b.WriteString(CategoryIndicator(e.Category, e.CategoryTitle))
	b.WriteString("\n")
	b.WriteString(Dim(e.CategoryDescription))
	b.WriteString("\n\n")
	b.WriteString(Bold(loc.T("quick_summary")))
	b.WriteString(" ")
	b.WriteString(e.Summary)
	return b.String()
}

// FormatEvaluation renders the whole simulator screen as plain output.
func FormatEvaluation(e *contract.Evaluation, loc realism.Localizer) string {
	var b strings.Builder
	b.WriteString(Header(loc.T("title")))
	b.WriteString("\n\n")
	b.WriteString(RenderTriangle(e.Position, e.Score, [3]string{
		e.Factor(domain.FactorQuality).Label,
		e.Factor(domain.FactorTime).Label,
		e.Factor(domain.FactorBudget).Label,
	}))
	b.WriteString("\n\n")
	b.WriteString(FormatSliders(e, loc, ""))
	b.WriteString("\n\n")
	b.WriteString(FormatScore(e, loc))
	b.WriteString("\n")
	return b.String()
}

// AnalysisHeading is the "Why the rating is N% - Detailed analysis" line.
func AnalysisHeading(score int, loc realism.Localizer) string {
	return fmt.Sprintf("%s %d%s", loc.T("why_rating"), score, loc.T("detailed_analysis"))
}

// FormatAnalysis renders the four analysis lists. Empty lists show their
// placeholder text.
func FormatAnalysis(e *contract.Evaluation, loc realism.Localizer) string {
	a := realism.WithFallbacks(e.Analysis, loc)

	sections := []struct {
		title  string
		marker string
		items  []string
	}{
		{loc.T("reasons_for_rating"), StyleBlue.Render("•"), a.Reasoning},
		{loc.T("main_risks"), StyleRed.Render("!"), a.Risks},
		{loc.T("real_world_impacts"), StyleYellow.Render("→"), a.RealWorldImpacts},
		{loc.T("recommendations"), StyleGreen.Render("✓"), a.Recommendations},
	}

	var b strings.Builder
	b.WriteString(Header(AnalysisHeading(e.Score, loc)))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(Bold(s.title))
		b.WriteString("\n")
		b.WriteString(Bullets(s.marker, s.items))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatBreakdown lists the score adjustments as a table.
func FormatBreakdown(adjs []realism.Adjustment) string {
	rows := make([][]string, len(adjs))
	for i, a := range adjs {
		rows[i] = []string{string(a.Code), FormatDelta(a.Delta)}
	}
	return RenderTable([]string{"RULE", "DELTA"}, rows, 1)
}

// FormatShare renders the result of a share request.
func FormatShare(r contract.ShareResult) string {
	mark := StyleGreen.Render("✔")
	if !r.Copied {
		mark = StyleRed.Render("✖")
	}
	return fmt.Sprintf("%s %s %s\n  %s\n", mark, Bold(r.Title), Dim(r.Description), r.Link)
}

// FormatPreferences renders the stored language and theme.
func FormatPreferences(p domain.Preferences, loc realism.Localizer) string {
	return RenderTable(
		[]string{strings.ToUpper(loc.T("language")), strings.ToUpper(loc.T("theme"))},
		[][]string{{string(p.Language), loc.T(string(p.Theme))}},
	)
}
