package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID tells the screens of the simulator apart.
type ViewID int

const (
	ViewSimulator ViewID = iota // triangle, sliders and score
	ViewAnalysis                // realism analysis pager
	ViewConcept                 // project triangle explainer
	ViewForm                    // huh settings form
)

// View is one screen on the navigation stack. Title feeds the breadcrumb in
// the header and ShortHelp the key hints in the status bar.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	Title() string
}

// viewCapturesInput reports whether v gets every key, including q and esc.
// Forms need them for typing and for their own cancel handling.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}
