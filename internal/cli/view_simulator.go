package cli

import (
	"context"

	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultFocus = domain.FactorTime

	smallStep = 1.0
	largeStep = 5.0

	// sideBySideWidth is the narrowest terminal that fits the triangle next
	// to the sliders.
	sideBySideWidth = 104
)

type simulatorKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Dec      key.Binding
	Inc      key.Binding
	DecMore  key.Binding
	IncMore  key.Binding
	Share    key.Binding
	Analysis key.Binding
	Concept  key.Binding
	Settings key.Binding
}

var simulatorKeys = simulatorKeyMap{
	Next:     key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↑↓", "select")),
	Prev:     key.NewBinding(key.WithKeys("up", "k", "shift+tab")),
	Dec:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "±1")),
	Inc:      key.NewBinding(key.WithKeys("right", "l")),
	DecMore:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("⇧←→", "±5")),
	IncMore:  key.NewBinding(key.WithKeys("shift+right", "L")),
	Share:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
	Analysis: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analysis")),
	Concept:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "concept")),
	Settings: key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
}

// simulatorView is the home view: triangle, sliders and the realism block.
type simulatorView struct {
	state *SharedState
}

func newSimulatorView(state *SharedState) *simulatorView {
	return &simulatorView{state: state}
}

func (v *simulatorView) ID() ViewID    { return ViewSimulator }
func (v *simulatorView) Title() string { return v.state.Loc.T("simulator") }

func (v *simulatorView) ShortHelp() []key.Binding {
	k := simulatorKeys
	return []key.Binding{k.Next, k.Dec, k.DecMore, k.Share, k.Analysis, k.Concept, k.Settings}
}

func (v *simulatorView) Init() tea.Cmd { return nil }

func (v *simulatorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	k := simulatorKeys
	switch {
	case key.Matches(keyMsg, k.Next):
		v.state.Focus = stepFocus(v.state.Focus, 1)
	case key.Matches(keyMsg, k.Prev):
		v.state.Focus = stepFocus(v.state.Focus, -1)
	case key.Matches(keyMsg, k.Dec):
		return v, v.nudge(-smallStep)
	case key.Matches(keyMsg, k.Inc):
		return v, v.nudge(smallStep)
	case key.Matches(keyMsg, k.DecMore):
		return v, v.nudge(-largeStep)
	case key.Matches(keyMsg, k.IncMore):
		return v, v.nudge(largeStep)
	case key.Matches(keyMsg, k.Share):
		sim := v.state.Sim
		return v, func() tea.Msg {
			return shareDoneMsg{result: sim.Share(context.Background())}
		}
	case key.Matches(keyMsg, k.Analysis):
		return v, pushView(newAnalysisView(v.state))
	case key.Matches(keyMsg, k.Concept):
		return v, pushView(newConceptView(v.state))
	case key.Matches(keyMsg, k.Settings):
		return v, pushView(newSettingsView(v.state))
	}
	return v, nil
}

// nudge moves the focused slider by delta from its current share.
func (v *simulatorView) nudge(delta float64) tea.Cmd {
	f := v.state.Focus
	current := v.state.Sim.State().Get(f)
	if _, err := v.state.Sim.Adjust(context.Background(), f, current+delta); err != nil {
		return notice(err.Error(), false)
	}
	return nil
}

func (v *simulatorView) View() string {
	e := v.state.Sim.Snapshot(context.Background())
	loc := v.state.Loc

	triangle := formatter.RenderTriangle(e.Position, e.Score, [3]string{
		e.Factor(domain.FactorQuality).Label,
		e.Factor(domain.FactorTime).Label,
		e.Factor(domain.FactorBudget).Label,
	})
	panel := formatter.FormatSliders(e, loc, v.state.Focus) + "\n\n" + formatter.FormatScore(e, loc)

	if v.state.Width > 0 && v.state.Width < sideBySideWidth {
		return "\n" + lipgloss.JoinVertical(lipgloss.Left, triangle, "", panel)
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, triangle, "    ", panel)
}

// stepFocus cycles through the factors in display order.
func stepFocus(f domain.Factor, step int) domain.Factor {
	i := 0
	for j, x := range domain.Factors {
		if x == f {
			i = j
		}
	}
	n := len(domain.Factors)
	return domain.Factors[((i+step)%n+n)%n]
}
