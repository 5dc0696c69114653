package cli

import (
	"github.com/alexanderramin/triad/internal/cli/formatter"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/i18n"
	"github.com/alexanderramin/triad/internal/service"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App   *App
	Sim   service.SimulatorService
	Loc   i18n.Translator
	Prefs domain.Preferences

	// Focus is the slider the arrow keys move.
	Focus domain.Factor

	// Transient notice shown above the key hints.
	Notice    string
	NoticeOK  bool
	noticeSeq int

	// Terminal dimensions
	Width  int
	Height int
}

// ApplyPreferences switches the language and theme of the running TUI.
func (s *SharedState) ApplyPreferences(p domain.Preferences) {
	s.Prefs = p
	s.Loc = s.App.translator(p.Language)
	s.Sim.SetLocalizer(s.Loc)
	formatter.ApplyTheme(p.Theme)
}

// setNotice stores a notice and returns its sequence number.
func (s *SharedState) setNotice(text string, ok bool) int {
	s.noticeSeq++
	s.Notice = text
	s.NoticeOK = ok
	return s.noticeSeq
}

// clearNotice hides the notice if seq is still the latest one.
func (s *SharedState) clearNotice(seq int) {
	if seq == s.noticeSeq {
		s.Notice = ""
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints) and the notice line.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
