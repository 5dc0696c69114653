// Package urlstate keeps the triangle in the query string of a share link.
package urlstate

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/alexanderramin/triad/internal/domain"
)

// Location is the port to the address the triangle state lives in.
// Replace overwrites the current entry; it never adds history.
type Location interface {
	Query() url.Values
	Replace(q url.Values)
}

// CarriedParam marks a query the simulator page wrote itself while the
// user was moving sliders, as opposed to a link opened from outside.
const CarriedParam = "carried"

// IsCarried reports whether q was written by the page and should be read
// with DecodeCarried.
func IsCarried(q url.Values) bool {
	return q.Get(CarriedParam) == "1"
}

// Decode reads time, budget and quality from q. It succeeds only when all
// three are present, finite and inside the slider domain; the result is
// normalized.
func Decode(q url.Values) (domain.TriangleState, bool) {
	return decode(q, domain.InSliderRange)
}

// DecodeCarried reads a state handed back between slider moves. A
// normalized share may sit below the slider minimum, so any finite positive
// triple is accepted; the result is normalized.
func DecodeCarried(q url.Values) (domain.TriangleState, bool) {
	return decode(q, func(v float64) bool {
		return v > 0 && !math.IsInf(v, 0)
	})
}

func decode(q url.Values, accept func(float64) bool) (domain.TriangleState, bool) {
	var vals [3]float64
	for i, f := range domain.Factors {
		raw := strings.TrimSpace(q.Get(string(f)))
		if raw == "" {
			return domain.TriangleState{}, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || !accept(v) {
			return domain.TriangleState{}, false
		}
		vals[i] = v
	}
	return domain.Normalize(domain.TriangleState{Time: vals[0], Budget: vals[1], Quality: vals[2]}), true
}

// Encode writes the three shares with one decimal place.
func Encode(s domain.TriangleState) url.Values {
	q := url.Values{}
	for _, f := range domain.Factors {
		q.Set(string(f), formatShare(s.Get(f)))
	}
	return q
}

// Merge returns base with the triangle parameters replaced by s. Other
// parameters are kept.
func Merge(base url.Values, s domain.TriangleState) url.Values {
	out := url.Values{}
	for k, v := range base {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range Encode(s) {
		out[k] = v
	}
	return out
}

// Link appends the encoded state to base, replacing any triangle parameters
// already in it.
func Link(base string, s domain.TriangleState) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base url %q: %w", base, err)
	}
	u.RawQuery = Merge(u.Query(), s).Encode()
	return u.String(), nil
}

// ParseLink returns the query carried by a share link. A bare query such as
// "time=50&budget=25&quality=25" is accepted as well.
func ParseLink(link string) (url.Values, error) {
	link = strings.TrimSpace(link)
	if !strings.Contains(link, "?") && !strings.Contains(link, "://") {
		return url.ParseQuery(link)
	}
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("parsing link %q: %w", link, err)
	}
	return u.Query(), nil
}

func formatShare(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}

// Memory is an in-process Location. It records how often it was replaced so
// callers can check that edits never grow a history.
type Memory struct {
	mu       sync.Mutex
	query    url.Values
	replaced int
}

// NewMemory starts from q, which may be nil.
func NewMemory(q url.Values) *Memory {
	if q == nil {
		q = url.Values{}
	}
	return &Memory{query: q}
}

func (m *Memory) Query() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := url.Values{}
	for k, v := range m.query {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func (m *Memory) Replace(q url.Values) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = q
	m.replaced++
}

// Replacements reports how many times Replace was called.
func (m *Memory) Replacements() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.replaced
}
