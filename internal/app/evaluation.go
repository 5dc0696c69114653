package app

import (
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/realism"
)

// FactorView is one slider as presented to the user.
type FactorView struct {
	Factor         domain.Factor    `json:"factor"`
	Label          string           `json:"label"`
	Value          float64          `json:"value"`
	Percent        int              `json:"percent"`
	Intensity      domain.Intensity `json:"intensity"`
	IntensityLabel string           `json:"intensityLabel"`
	Trend          domain.Trend     `json:"trend,omitempty"`
}

// Evaluation is everything a surface needs to render the current triangle.
// It is derived on demand and never stored.
type Evaluation struct {
	State               domain.TriangleState `json:"state"`
	Factors             []FactorView         `json:"factors"`
	Total               int                  `json:"total"`
	Position            domain.Point         `json:"position"`
	Score               int                  `json:"score"`
	Category            domain.Category      `json:"category"`
	CategoryTitle       string               `json:"categoryTitle"`
	CategoryDescription string               `json:"categoryDescription"`
	Summary             string               `json:"summary"`
	Analysis            realism.Analysis     `json:"analysis"`
	Breakdown           []realism.Adjustment `json:"breakdown"`
	LastChanged         domain.Factor        `json:"lastChanged,omitempty"`
	ShareLink           string               `json:"shareLink"`
}

// Factor returns the view for f. The zero value is returned for unknown
// factors.
func (e *Evaluation) Factor(f domain.Factor) FactorView {
	for _, fv := range e.Factors {
		if fv.Factor == f {
			return fv
		}
	}
	return FactorView{}
}

// ShareResult is the outcome of a share request. Title and Description are
// the localized notification to show.
type ShareResult struct {
	Link        string `json:"link"`
	Copied      bool   `json:"copied"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
