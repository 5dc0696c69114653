package service

import (
	"github.com/alexanderramin/triad/internal/contract"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/realism"
	"github.com/alexanderramin/triad/internal/urlstate"
)

// BuildEvaluation derives every presentation value for s. shareBase may be
// empty, in which case ShareLink is left blank.
func BuildEvaluation(s domain.TriangleState, lastChanged domain.Factor, loc realism.Localizer, shareBase string) *contract.Evaluation {
	n := s
	if !n.IsNormalized() {
		n = domain.Normalize(s)
	}
	res := realism.Evaluate(n)
	category := realism.CategoryFor(res.Score)

	e := &contract.Evaluation{
		State:               n,
		Position:            domain.Position(n),
		Score:               res.Score,
		Category:            category,
		CategoryTitle:       loc.T(realism.CategoryTitleKey(category)),
		CategoryDescription: loc.T(realism.CategoryDescriptionKey(category)),
		Summary:             loc.T(realism.SummaryKey(res.Score)),
		Analysis:            realism.Explain(n, res.Score, loc),
		Breakdown:           res.Adjustments,
		LastChanged:         lastChanged,
	}

	rounded := n.Rounded()
	for i, f := range domain.Factors {
		intensity := domain.IntensityOf(n.Get(f))
		e.Factors = append(e.Factors, contract.FactorView{
			Factor:         f,
			Label:          loc.T(realism.FactorLabelKey(f)),
			Value:          n.Get(f),
			Percent:        rounded[i],
			Intensity:      intensity,
			IntensityLabel: loc.T(realism.IntensityKey(intensity)),
			Trend:          domain.TrendOf(n, f, lastChanged),
		})
		e.Total += rounded[i]
	}

	if shareBase != "" {
		if link, err := urlstate.Link(shareBase, n); err == nil {
			e.ShareLink = link
		}
	}
	return e
}
