// Package teatest runs bubbletea models synchronously in tests.
//
// A Driver stands in for tea.Program: every message goes straight through
// Update and the returned commands are executed and fed back until none are
// left. Commands that block (timers, cursor blinks) are abandoned after a
// short timeout, so ticks never fire inside a test.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many follow-up commands one message may chain.
const MaxDrainDepth = 100

// cmdTimeout separates immediate commands from ones waiting on a timer.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a tea.Model and drains the resulting commands.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg came out of a command.
	Quitting bool
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains the commands it returns. Nothing is sent
// after the model quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a special key such as tea.KeyEnter or tea.KeyShiftLeft.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressKey sends a single character.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends s one character at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) PressEnter()      { d.T.Helper(); d.Press(tea.KeyEnter) }
func (d *Driver) PressEsc()        { d.T.Helper(); d.Press(tea.KeyEsc) }
func (d *Driver) PressCtrlC()      { d.T.Helper(); d.Press(tea.KeyCtrlC) }
func (d *Driver) PressUp()         { d.T.Helper(); d.Press(tea.KeyUp) }
func (d *Driver) PressDown()       { d.T.Helper(); d.Press(tea.KeyDown) }
func (d *Driver) PressLeft()       { d.T.Helper(); d.Press(tea.KeyLeft) }
func (d *Driver) PressRight()      { d.T.Helper(); d.Press(tea.KeyRight) }
func (d *Driver) PressShiftLeft()  { d.T.Helper(); d.Press(tea.KeyShiftLeft) }
func (d *Driver) PressShiftRight() { d.T.Helper(); d.Press(tea.KeyShiftRight) }
func (d *Driver) PressTab()        { d.T.Helper(); d.Press(tea.KeyTab) }
func (d *Driver) PressShiftTab()   { d.T.Helper(); d.Press(tea.KeyShiftTab) }

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: gave up draining after %d chained commands", MaxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.drain(next, depth+1)
	}
}

// runWithTimeout returns the message of cmd, or nil when it is still
// blocked after cmdTimeout.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink messages of bubbles/cursor,
// which would otherwise chain into more timer commands.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
