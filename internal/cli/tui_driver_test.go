package cli

import (
	"context"
	"net/url"
	"testing"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/teatest"
	"github.com/alexanderramin/triad/internal/urlstate"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals (view
// stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
	Location *urlstate.Memory
}

// NewTestDriver starts the TUI on the state carried by q (nil for the
// default triple) with a 120x40 terminal.
func NewTestDriver(t *testing.T, app *App, q url.Values) *TestDriver {
	t.Helper()
	ctx := context.Background()

	prefs, err := app.settings(ctx, "")
	require.NoError(t, err)

	loc := urlstate.NewMemory(q)
	tr := app.translator(prefs.Language)
	sim := app.newSimulator(loc, tr)
	sim.Init(ctx)

	state := &SharedState{App: app, Sim: sim, Loc: tr, Prefs: prefs}
	d := teatest.New(t, newAppModel(state), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d, Location: loc}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// SimState returns the current triple of the session.
func (d *TestDriver) SimState() domain.TriangleState {
	return d.State().Sim.State()
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// PlainView returns the rendered screen without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}
