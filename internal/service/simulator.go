package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/triad/internal/clipboard"
	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/realism"
	"github.com/alexanderramin/triad/internal/urlstate"
	"github.com/google/uuid"
)

// ErrInvalidValue is returned for slider values that are not finite numbers.
var ErrInvalidValue = errors.New("invalid slider value")

type simulator struct {
	mu          sync.Mutex
	id          string
	location    urlstate.Location
	clip        clipboard.Writer
	loc         realism.Localizer
	shareBase   string
	state       domain.TriangleState
	lastChanged domain.Factor
	observer    UseCaseObserver
}

// NewSimulator starts a session on the default triple. Call Init to pick up
// a state carried by the location.
func NewSimulator(
	location urlstate.Location,
	clip clipboard.Writer,
	loc realism.Localizer,
	shareBase string,
	observers ...UseCaseObserver,
) SimulatorService {
	if clip == nil {
		clip = clipboard.Discard{}
	}
	return &simulator{
		id:        uuid.NewString(),
		location:  location,
		clip:      clip,
		loc:       loc,
		shareBase: shareBase,
		state:     domain.DefaultState(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *simulator) SessionID() string { return s.id }

func (s *simulator) State() domain.TriangleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *simulator) SetLocalizer(loc realism.Localizer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loc = loc
}

// Init reads the location once. It reports whether a valid state was found;
// anything else keeps the default.
func (s *simulator) Init(ctx context.Context) bool {
	return s.seed(ctx, urlstate.Decode, false)
}

// Resume is Init for a location the simulator wrote itself, such as the
// query the web page sends back between slider moves. Shares pushed below
// the slider minimum by normalization are kept.
func (s *simulator) Resume(ctx context.Context) bool {
	return s.seed(ctx, urlstate.DecodeCarried, true)
}

func (s *simulator) seed(ctx context.Context, decode func(url.Values) (domain.TriangleState, bool), carried bool) bool {
	startedAt := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := false
	if s.location != nil {
		if st, ok := decode(s.location.Query()); ok {
			s.state = st
			seeded = true
		}
	}
	s.observe(ctx, "init", startedAt, nil, map[string]any{"seeded": seeded, "carried": carried})
	return seeded
}

func (s *simulator) Adjust(ctx context.Context, f domain.Factor, value float64) (eval *contract.Evaluation, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"factor": string(f), "value": value}
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.observe(ctx, "adjust", startedAt, err, fields) }()

	if _, err = domain.ParseFactor(string(f)); err != nil {
		return nil, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, value)
	}

	s.state = domain.Adjust(s.state, f, domain.Clamp(value))
	s.lastChanged = f
	if s.location != nil {
		s.location.Replace(urlstate.Merge(s.location.Query(), s.state))
	}

	eval = s.evaluationLocked()
	fields["score"] = eval.Score
	fields["rules"] = strings.Join(realism.MatchingRules(s.state, eval.Score), ",")
	return eval, nil
}

func (s *simulator) Snapshot(ctx context.Context) *contract.Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evaluationLocked()
}

// Share copies the link for the current state. A clipboard failure is
// reported in the result and never changes the state.
func (s *simulator) Share(ctx context.Context) contract.ShareResult {
	startedAt := time.Now().UTC()
	s.mu.Lock()
	state, loc := s.state, s.loc
	s.mu.Unlock()

	link, err := urlstate.Link(s.shareBase, state)
	if err == nil {
		err = s.clip.WriteText(ctx, link)
	}
	s.observe(ctx, "share", startedAt, err, map[string]any{"copied": err == nil})

	if err != nil {
		return contract.ShareResult{
			Link:        link,
			Copied:      false,
			Title:       loc.T("copy_failed"),
			Description: loc.T("copy_failed_desc"),
		}
	}
	return contract.ShareResult{
		Link:        link,
		Copied:      true,
		Title:       loc.T("link_copied"),
		Description: loc.T("link_copied_desc"),
	}
}

func (s *simulator) evaluationLocked() *contract.Evaluation {
	return BuildEvaluation(s.state, s.lastChanged, s.loc, s.shareBase)
}

func (s *simulator) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	event := finishedEvent(name, startedAt, err, fields)
	event.SessionID = s.id
	s.observer.ObserveUseCase(ctx, event)
}
