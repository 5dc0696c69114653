package testutil

import (
	"net/url"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/urlstate"
)

// StateOption tweaks a fixture triple.
type StateOption func(*domain.TriangleState)

func WithTime(v float64) StateOption {
	return func(s *domain.TriangleState) { s.Time = v }
}

func WithBudget(v float64) StateOption {
	return func(s *domain.TriangleState) { s.Budget = v }
}

func WithQuality(v float64) StateOption {
	return func(s *domain.TriangleState) { s.Quality = v }
}

// NewState starts from the balanced default and applies opts. The result is
// not normalized.
func NewState(opts ...StateOption) domain.TriangleState {
	s := domain.DefaultState()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Query builds the share-link query for a raw triple without rounding, the
// way a hand-edited link would look.
func Query(t, b, q string) url.Values {
	return url.Values{"time": {t}, "budget": {b}, "quality": {q}}
}

// NewLocation returns an in-memory location already holding s.
func NewLocation(s domain.TriangleState) *urlstate.Memory {
	return urlstate.NewMemory(urlstate.Encode(s))
}

// Named triples used across packages.
var (
	ExtremeTime     = domain.TriangleState{Time: 90, Budget: 5, Quality: 5}
	DominantFocused = domain.TriangleState{Time: 50, Budget: 25, Quality: 25}
)
