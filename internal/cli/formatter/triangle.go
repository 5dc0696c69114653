package formatter

import (
	"math"
	"strings"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Plot grid size in terminal cells. Cells are roughly twice as tall as wide,
// so the grid is wider than it is tall.
const (
	PlotWidth  = 41
	PlotHeight = 15
)

const (
	edgeRune  = '·'
	pointRune = '●'
)

var (
	plotMinX, plotMaxX = domain.VertexTime.X, domain.VertexBudget.X
	plotMinY, plotMaxY = domain.VertexQuality.Y, domain.VertexTime.Y
)

// PlotCell maps a plot-space point to its grid column and row.
func PlotCell(p domain.Point) (col, row int) {
	col = int(math.Round((p.X - plotMinX) / (plotMaxX - plotMinX) * (PlotWidth - 1)))
	row = int(math.Round((p.Y - plotMinY) / (plotMaxY - plotMinY) * (PlotHeight - 1)))
	return min(max(col, 0), PlotWidth-1), min(max(row, 0), PlotHeight-1)
}

// RenderTriangle draws the triangle outline with the state point on it.
// labels are the quality, time and budget captions in that order.
func RenderTriangle(point domain.Point, score int, labels [3]string) string {
	grid := make([][]rune, PlotHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", PlotWidth))
	}

	edges := [][2]domain.Point{
		{domain.VertexQuality, domain.VertexTime},
		{domain.VertexTime, domain.VertexBudget},
		{domain.VertexBudget, domain.VertexQuality},
	}
	for _, e := range edges {
		const steps = 4 * PlotWidth
		for i := 0; i <= steps; i++ {
			t := float64(i) / steps
			col, row := PlotCell(domain.Point{
				X: e[0].X + (e[1].X-e[0].X)*t,
				Y: e[0].Y + (e[1].Y-e[0].Y)*t,
			})
			grid[row][col] = edgeRune
		}
	}

	pc, pr := PlotCell(point)
	grid[pr][pc] = pointRune

	marker := ScoreStyle(score).Bold(true).Render(string(pointRune))
	edge := StyleDim.Render(string(edgeRune))

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(PlotWidth, lipgloss.Center, StyleBlue.Render(labels[0])))
	b.WriteString("\n")
	for _, row := range grid {
		line := strings.TrimRight(string(row), " ")
		line = strings.ReplaceAll(line, string(edgeRune), edge)
		line = strings.ReplaceAll(line, string(pointRune), marker)
		b.WriteString(line)
		b.WriteString("\n")
	}

	left := StyleBlue.Render(labels[1])
	right := StyleBlue.Render(labels[2])
	gap := max(PlotWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	return b.String()
}
