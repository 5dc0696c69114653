package cli

import (
	"testing"

	"github.com/alexanderramin/triad/internal/clipboard"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/testutil"
	"github.com/alexanderramin/triad/internal/urlstate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_SimulatorLoadsOnStartup(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	assert.Equal(t, ViewSimulator, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, domain.FactorTime, d.State().Focus)

	view := d.PlainView()
	assert.Contains(t, view, "triad")
	assert.Contains(t, view, "Total: 100%")
	assert.Contains(t, view, "●")
}

func TestTUI_StartsFromLocationState(t *testing.T) {
	d := NewTestDriver(t, testApp(t), testutil.Query("80", "10", "10"))

	assert.InDelta(t, 80, d.SimState().Time, 1e-6)
	assert.Contains(t, d.PlainView(), "80%")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_FocusCycles(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	d.PressDown()
	assert.Equal(t, domain.FactorBudget, d.State().Focus)
	d.PressTab()
	assert.Equal(t, domain.FactorQuality, d.State().Focus)
	d.PressDown()
	assert.Equal(t, domain.FactorTime, d.State().Focus)
	d.PressUp()
	assert.Equal(t, domain.FactorQuality, d.State().Focus)
	d.PressShiftTab()
	assert.Equal(t, domain.FactorBudget, d.State().Focus)
}

func TestTUI_ArrowKeysAdjustFocusedFactor(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)
	start := d.SimState().Time

	d.PressRight()
	assert.InDelta(t, start+1, d.SimState().Time, 1e-6)

	d.PressShiftRight()
	assert.InDelta(t, start+6, d.SimState().Time, 1e-6)

	d.PressLeft()
	d.PressShiftLeft()
	assert.InDelta(t, start, d.SimState().Time, 1e-6)

	s := d.SimState()
	assert.InDelta(t, 100, s.Total(), domain.Epsilon)
}

func TestTUI_AdjustKeepsSumAndUpdatesLocation(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	for i := 0; i < 20; i++ {
		d.PressShiftRight()
	}
	s := d.SimState()
	assert.InDelta(t, 100, s.Total(), domain.Epsilon)
	assert.LessOrEqual(t, s.Time, domain.SliderMax+domain.Epsilon)

	got, ok := urlstate.Decode(d.Location.Query())
	require.True(t, ok)
	assert.InDelta(t, s.Time, got.Time, 0.1)
	assert.Equal(t, 20, d.Location.Replacements())
}

func TestTUI_ShareCopiesLinkAndShowsNotice(t *testing.T) {
	app := testApp(t)
	rec := app.Clipboard.(*clipboard.Recorder)
	d := NewTestDriver(t, app, nil)

	d.PressKey('s')

	require.NotEmpty(t, rec.Last())
	assert.Equal(t, rec.Last(), d.State().Sim.Snapshot(t.Context()).ShareLink)
	assert.True(t, d.State().NoticeOK)
	assert.Contains(t, d.PlainView(), "Link copied!")
}

func TestTUI_ShareFailureKeepsState(t *testing.T) {
	app := testApp(t)
	app.Clipboard = &clipboard.Recorder{Err: clipboard.ErrUnavailable}
	d := NewTestDriver(t, app, nil)
	before := d.SimState()

	d.PressKey('s')

	assert.False(t, d.State().NoticeOK)
	assert.Contains(t, d.PlainView(), "Failed to copy link")
	assert.Equal(t, before, d.SimState())
}

func TestTUI_AnalysisViewAndBack(t *testing.T) {
	d := NewTestDriver(t, testApp(t), testutil.Query("80", "10", "10"))

	d.PressKey('a')
	assert.Equal(t, ViewAnalysis, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())

	view := d.PlainView()
	assert.Contains(t, view, "Simulator › Analysis")
	assert.Contains(t, view, "WHY THE RATING IS")

	d.PressEsc()
	assert.Equal(t, ViewSimulator, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_ConceptView(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	d.PressKey('c')
	assert.Equal(t, ViewConcept, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "WHAT IS THE PROJECT TRIANGLE?")

	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}

func TestTUI_SettingsCancelWithEsc(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	d.PressKey(',')
	require.Equal(t, ViewForm, d.ActiveViewID())

	// q goes to the form instead of quitting.
	d.PressKey('q')
	assert.False(t, d.IsQuitting())

	d.PressEsc()
	assert.Equal(t, ViewSimulator, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "Cancelled.")
}

func TestTUI_ApplySettingsSwitchesLanguageAndSaves(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app, nil)

	d.Send(wizardCompleteMsg{nextCmd: applySettings(d.State(), domain.LanguageCzech, domain.ThemeDark)})

	assert.Equal(t, domain.LanguageCzech, d.State().Loc.Language())
	assert.Contains(t, d.PlainView(), "Celkem: 100%")
	assert.Contains(t, d.PlainView(), "Nastavení uloženo")

	stored, err := app.Preferences.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageCzech, stored.Language)
	assert.Equal(t, domain.ThemeDark, stored.Theme)
}

func TestTUI_WindowResizePropagation(t *testing.T) {
	d := NewTestDriver(t, testApp(t), nil)

	d.PressKey('a')
	d.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, d.State().Width)
	assert.Equal(t, 24, d.State().Height)

	d.PressEsc()
	// Narrow terminals stack the triangle above the sliders.
	view := d.PlainView()
	assert.Contains(t, view, "Total: 100%")
}
