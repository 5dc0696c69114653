package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView puts a huh.Form on the navigation stack. Submitting runs done;
// esc or an aborted form leaves with a "cancelled" notice and changes nothing.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	titleKey string
	done     func() tea.Cmd
}

func newWizardView(state *SharedState, titleKey string, form *huh.Form, done func() tea.Cmd) *wizardView {
	return &wizardView{state: state, form: form, titleKey: titleKey, done: done}
}

func (v *wizardView) Init() tea.Cmd { return v.form.Init() }

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, v.finish(v.cancelled())
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		var next tea.Cmd
		if v.done != nil {
			next = v.done()
		}
		return v, v.finish(tea.Batch(cmd, next))
	case huh.StateAborted:
		return v, v.finish(v.cancelled())
	default:
		return v, cmd
	}
}

// finish pops the form; next runs once the view below is back on top.
func (v *wizardView) finish(next tea.Cmd) tea.Cmd {
	return func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}

func (v *wizardView) cancelled() tea.Cmd {
	return notice(v.state.Loc.T("cancelled"), false)
}

func (v *wizardView) View() string  { return "\n" + v.form.View() }
func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.state.Loc.T(v.titleKey) }

func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", v.state.Loc.T("save"))),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
