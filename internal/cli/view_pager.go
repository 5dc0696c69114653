package cli

import (
	"context"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var pagerScrollKey = key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓ pgup/pgdn", "scroll"))

// pagerView shows read-only text in a scrollable viewport. render is called
// again whenever the size, language or theme changes.
type pagerView struct {
	id     ViewID
	title  string
	state  *SharedState
	render func(s *SharedState, width int) string
	vp     viewport.Model
}

func newPagerView(id ViewID, titleKey string, state *SharedState, render func(*SharedState, int) string) *pagerView {
	v := &pagerView{
		id:     id,
		title:  titleKey,
		state:  state,
		render: render,
		vp:     viewport.New(state.Width, state.ContentHeight()-1),
	}
	v.vp.MouseWheelEnabled = true
	v.refresh()
	return v
}

// newAnalysisView lists the reasons, risks, impacts and recommendations for
// the current state, followed by the score breakdown.
func newAnalysisView(state *SharedState) *pagerView {
	return newPagerView(ViewAnalysis, "analysis", state, func(s *SharedState, _ int) string {
		e := s.Sim.Snapshot(context.Background())
		return formatter.FormatAnalysis(e, s.Loc) + "\n" + formatter.FormatBreakdown(e.Breakdown)
	})
}

// newConceptView renders the project triangle explainer.
func newConceptView(state *SharedState) *pagerView {
	return newPagerView(ViewConcept, "concept", state, func(s *SharedState, width int) string {
		return formatter.RenderMarkdown(i18n.Concept(s.Loc.Language()), min(width, 80))
	})
}

func (v *pagerView) ID() ViewID    { return v.id }
func (v *pagerView) Title() string { return v.state.Loc.T(v.title) }

func (v *pagerView) ShortHelp() []key.Binding {
	return []key.Binding{pagerScrollKey}
}

func (v *pagerView) Init() tea.Cmd { return nil }

func (v *pagerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight() - 1
		v.refresh()
		return v, nil
	case refreshViewMsg:
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *pagerView) refresh() {
	v.vp.SetContent(v.render(v.state, v.vp.Width))
}

func (v *pagerView) View() string {
	return v.vp.View() + "\n" + scrollIndicator(v.vp)
}
