package domain

import "math"

const (
	// SliderMin and SliderMax bound every raw slider value before normalization.
	SliderMin  = 5.0
	SliderMax  = 90.0
	SliderStep = 1.0

	// Balanced is the share each factor holds in a perfectly even triangle.
	Balanced = 33.33

	// Epsilon is the tolerance used for every sum and invariant check.
	Epsilon = 1e-6
)

// TriangleState holds the three coupled percentage shares.
// After Normalize the fields sum to 100.
type TriangleState struct {
	Time    float64 `json:"time"`
	Budget  float64 `json:"budget"`
	Quality float64 `json:"quality"`
}

// Point is a location in the plotting space of the triangle.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Plot vertices. The quality corner is the apex.
var (
	VertexQuality = Point{X: 200, Y: 50}
	VertexTime    = Point{X: 50, Y: 300}
	VertexBudget  = Point{X: 350, Y: 300}
)

// DefaultState returns the balanced starting triple.
func DefaultState() TriangleState {
	return TriangleState{Time: 33.33, Budget: 33.33, Quality: 33.34}
}

// Get returns the share held by f.
func (s TriangleState) Get(f Factor) float64 {
	switch f {
	case FactorTime:
		return s.Time
	case FactorBudget:
		return s.Budget
	case FactorQuality:
		return s.Quality
	}
	return 0
}

// With returns a copy of s with f set to v.
func (s TriangleState) With(f Factor, v float64) TriangleState {
	switch f {
	case FactorTime:
		s.Time = v
	case FactorBudget:
		s.Budget = v
	case FactorQuality:
		s.Quality = v
	}
	return s
}

// Values returns the shares in canonical factor order.
func (s TriangleState) Values() [3]float64 {
	return [3]float64{s.Time, s.Budget, s.Quality}
}

// Total returns the sum of the three shares.
func (s TriangleState) Total() float64 {
	return s.Time + s.Budget + s.Quality
}

// Rounded returns the shares rounded to whole percentages for display.
func (s TriangleState) Rounded() [3]int {
	return [3]int{
		int(math.Round(s.Time)),
		int(math.Round(s.Budget)),
		int(math.Round(s.Quality)),
	}
}

// IsNormalized reports whether the shares sum to 100 within Epsilon.
func (s TriangleState) IsNormalized() bool {
	return math.Abs(s.Total()-100) <= Epsilon
}

// Clamp limits v to the slider domain.
func Clamp(v float64) float64 {
	return math.Max(SliderMin, math.Min(SliderMax, v))
}

// InSliderRange reports whether v is a finite number inside the slider domain.
func InSliderRange(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= SliderMin && v <= SliderMax
}

// Normalize rescales the triple so it sums to 100. A zero sum yields the
// default balanced triple.
func Normalize(s TriangleState) TriangleState {
	sum := s.Total()
	if sum == 0 {
		return DefaultState()
	}
	return TriangleState{
		Time:    s.Time / sum * 100,
		Budget:  s.Budget / sum * 100,
		Quality: s.Quality / sum * 100,
	}
}

// Adjust moves one factor to newValue and hands half of the change to each of
// the other two, clamped to the slider domain, then normalizes.
//
// The clamp happens before normalization, so the transfer is not exact and
// the result depends on the path of earlier moves.
func Adjust(s TriangleState, field Factor, newValue float64) TriangleState {
	delta := newValue - s.Get(field)
	next := s.With(field, newValue)
	for _, other := range field.Others() {
		next = next.With(other, Clamp(s.Get(other)-delta/2))
	}
	return Normalize(next)
}

// Position maps the normalized triple onto the plot as a convex combination
// of the three vertices.
func Position(s TriangleState) Point {
	n := Normalize(s)
	wq := n.Quality / 100
	wt := n.Time / 100
	wb := n.Budget / 100
	return Point{
		X: wq*VertexQuality.X + wt*VertexTime.X + wb*VertexBudget.X,
		Y: wq*VertexQuality.Y + wt*VertexTime.Y + wb*VertexBudget.Y,
	}
}

// IntensityOf labels a single share for display next to its slider.
func IntensityOf(v float64) Intensity {
	switch {
	case v < 20:
		return IntensityMinimal
	case v < 35:
		return IntensityLow
	case v < 50:
		return IntensityStandard
	case v < 65:
		return IntensityHigh
	default:
		return IntensityMaximum
	}
}

// TrendOf describes how f moved relative to the last slider the user touched.
// lastChanged is empty until the first move.
func TrendOf(s TriangleState, f Factor, lastChanged Factor) Trend {
	if lastChanged == "" {
		return TrendNone
	}
	if lastChanged == f {
		return TrendSteady
	}
	if Normalize(s).Get(f) > Balanced {
		return TrendUp
	}
	return TrendDown
}
