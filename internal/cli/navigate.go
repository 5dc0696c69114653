package cli

import (
	"time"

	"github.com/alexanderramin/triad/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack.
type popViewMsg struct{}

// refreshViewMsg is broadcast to every view on the stack after the language
// or theme changed.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// shareDoneMsg carries the result of a share request.
type shareDoneMsg struct {
	result contract.ShareResult
}

// noticeMsg shows a transient line above the key hints.
type noticeMsg struct {
	text string
	ok   bool
}

// clearNoticeMsg hides the notice with the given sequence number, unless a
// newer one replaced it.
type clearNoticeMsg struct {
	seq int
}

// noticeTTL is how long a notice stays visible.
const noticeTTL = 3 * time.Second

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func notice(text string, ok bool) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, ok: ok} }
}
