package realism

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/triad/internal/domain"
)

// Localizer supplies every user-facing string. Missing keys come back as the
// key itself.
type Localizer interface {
	T(key string) string
}

// Analysis is the structured explanation behind a score. Each list is
// independently populated and may be empty.
type Analysis struct {
	Reasoning        []string `json:"reasoning"`
	Risks            []string `json:"risks"`
	RealWorldImpacts []string `json:"realWorldImpacts"`
	Recommendations  []string `json:"recommendations"`
}

// ruleContext is what every analysis rule sees.
type ruleContext struct {
	n     domain.TriangleState
	score int
	loc   Localizer
}

func (c ruleContext) t(key string) string { return c.loc.T(key) }

func (c ruleContext) pct(f domain.Factor) int {
	return int(math.Round(c.n.Get(f)))
}

// AnalysisRule pairs a predicate over the normalized triple and score with
// the text it contributes.
type AnalysisRule struct {
	Name  string
	when  func(c ruleContext) bool
	apply func(c ruleContext, a *Analysis)
}

// UnicornThreshold is the score from which the analysis switches to the
// over-balanced warning and skips every other rule.
const UnicornThreshold = 90

// AnalysisRules is evaluated top to bottom and every matching rule fires.
// The score-banded recommendation comes last because it is prepended to the
// recommendations the earlier rules produced.
var AnalysisRules = []AnalysisRule{
	{
		Name: "balanced",
		when: func(c ruleContext) bool {
			for _, v := range c.n.Values() {
				if math.Abs(v-domain.Balanced) >= 10 {
					return false
				}
			}
			return true
		},
		apply: func(c ruleContext, a *Analysis) {
			a.Reasoning = append(a.Reasoning, fmt.Sprintf("%s (%d%%, %d%%, %d%%)",
				c.t(KeyBalancedDistribution),
				c.pct(domain.FactorTime), c.pct(domain.FactorBudget), c.pct(domain.FactorQuality)))
			a.Recommendations = append(a.Recommendations, c.t(KeyMaintainBalance))
		},
	},
	{
		Name: "high_demands",
		when: func(c ruleContext) bool { return len(factorsWhere(c.n, above(50))) >= 2 },
		apply: func(c ruleContext, a *Analysis) {
			a.Reasoning = append(a.Reasoning, fmt.Sprintf("%s (%s)",
				c.t(KeyHighDemands), factorList(c, factorsWhere(c.n, above(50)))))
			a.Risks = append(a.Risks, c.t(KeyHighRiskFailure))
			a.RealWorldImpacts = append(a.RealWorldImpacts, c.t(KeyTeamPressure))
		},
	},
	extremeRule(domain.FactorTime, extremeHigh, above(60), factorTexts{
		reasoning: KeyExtremeTime, risk: KeyTimeTestingRisk,
		impact: KeyTimeBugsImpact, recommendation: KeyTimePhasesRec,
	}),
	extremeRule(domain.FactorBudget, extremeHigh, above(60), factorTexts{
		reasoning: KeyHighBudget, risk: KeyBudgetROIRisk,
		impact: KeyBudgetExpectations, recommendation: KeyBudgetJustification,
	}),
	extremeRule(domain.FactorQuality, extremeHigh, above(60), factorTexts{
		reasoning: KeyExtremeQuality, risk: KeyQualityPerfectionism,
		impact: KeyQualityNeverDone, recommendation: KeyQualityCriteria,
	}),
	{
		Name: "limited_areas",
		when: func(c ruleContext) bool { return len(factorsWhere(c.n, below(20))) >= 1 },
		apply: func(c ruleContext, a *Analysis) {
			a.Reasoning = append(a.Reasoning, fmt.Sprintf("%s (%s)",
				c.t(KeyLimitedAreas), factorList(c, factorsWhere(c.n, below(20)))))
		},
	},
	extremeRule(domain.FactorTime, extremeLow, below(15), factorTexts{
		reasoning: KeyVeryLittleTime, risk: KeyTimeDesignRisk,
		impact: KeyTimeQuickFixes, recommendation: KeyTimeFallback,
	}),
	extremeRule(domain.FactorBudget, extremeLow, below(15), factorTexts{
		reasoning: KeyLimitedBudget, risk: KeyBudgetUnpaidRisk,
		impact: KeyBudgetExpertLimit, recommendation: KeyBudgetOpenSource,
	}),
	extremeRule(domain.FactorQuality, extremeLow, below(15), factorTexts{
		reasoning: KeyLowQuality, risk: KeyQualityExpectations,
		impact: KeyQualityReputation, recommendation: KeyQualityMinimum,
	}),
	comboRule("speed_low_budget", domain.FactorTime, domain.FactorBudget, KeySpeedLowBudget),
	comboRule("quality_no_time", domain.FactorQuality, domain.FactorTime, KeyQualityNoTime),
	comboRule("money_low_quality", domain.FactorBudget, domain.FactorQuality, KeyMoneyLowQuality),
	{
		Name: "score_band",
		when: func(c ruleContext) bool { return c.score < 60 },
		apply: func(c ruleContext, a *Analysis) {
			key := KeyConsiderAdjustments
			if c.score < 30 {
				key = KeyUrgentUnrealistic
			}
			a.Recommendations = append([]string{c.t(key)}, a.Recommendations...)
		},
	},
}

// Explain builds the analysis for a triple and its score.
func Explain(s domain.TriangleState, score int, loc Localizer) Analysis {
	a := Analysis{
		Reasoning:        []string{},
		Risks:            []string{},
		RealWorldImpacts: []string{},
		Recommendations:  []string{},
	}
	c := ruleContext{n: domain.Normalize(s), score: score, loc: loc}

	if score >= UnicornThreshold {
		a.Reasoning = append(a.Reasoning, c.t(KeyUnicornDescription))
		a.Risks = append(a.Risks,
			c.t(KeyUnicornNoFocus),
			c.t(KeyUnicornNoCompromises),
			c.t(KeyUnicornIndecision),
		)
		a.Recommendations = append(a.Recommendations, c.t(KeyUnicornRecommendation))
		a.RealWorldImpacts = append(a.RealWorldImpacts, c.t(KeyUnicornDescription))
		return a
	}

	for _, r := range AnalysisRules {
		if r.when(c) {
			r.apply(c, &a)
		}
	}
	return a
}

// MatchingRules returns the names of the rules that fire for a triple and
// score, in evaluation order.
func MatchingRules(s domain.TriangleState, score int) []string {
	if score >= UnicornThreshold {
		return []string{"unicorn"}
	}
	c := ruleContext{n: domain.Normalize(s), score: score}
	var names []string
	for _, r := range AnalysisRules {
		if r.when(c) {
			names = append(names, r.Name)
		}
	}
	return names
}

type factorTexts struct {
	reasoning, risk, impact, recommendation string
}

type extremeKind string

const (
	extremeHigh extremeKind = "high"
	extremeLow  extremeKind = "low"
)

func extremeRule(f domain.Factor, kind extremeKind, pred func(float64) bool, keys factorTexts) AnalysisRule {
	return AnalysisRule{
		Name: fmt.Sprintf("%s_%s", kind, f),
		when: func(c ruleContext) bool { return pred(c.n.Get(f)) },
		apply: func(c ruleContext, a *Analysis) {
			a.Reasoning = append(a.Reasoning, fmt.Sprintf("%s (%d%%)", c.t(keys.reasoning), c.pct(f)))
			a.Risks = append(a.Risks, c.t(keys.risk))
			a.RealWorldImpacts = append(a.RealWorldImpacts, c.t(keys.impact))
			a.Recommendations = append(a.Recommendations, c.t(keys.recommendation))
		},
	}
}

// comboRule fires when the high factor exceeds 45 while the starved factor
// stays under 25.
func comboRule(name string, high, starved domain.Factor, key string) AnalysisRule {
	return AnalysisRule{
		Name: name,
		when: func(c ruleContext) bool { return c.n.Get(high) > 45 && c.n.Get(starved) < 25 },
		apply: func(c ruleContext, a *Analysis) {
			a.RealWorldImpacts = append(a.RealWorldImpacts, c.t(key))
		},
	}
}

func above(limit float64) func(float64) bool {
	return func(v float64) bool { return v > limit }
}

func below(limit float64) func(float64) bool {
	return func(v float64) bool { return v < limit }
}

func factorsWhere(n domain.TriangleState, pred func(float64) bool) []domain.Factor {
	var out []domain.Factor
	for _, f := range domain.Factors {
		if pred(n.Get(f)) {
			out = append(out, f)
		}
	}
	return out
}

func factorList(c ruleContext, fs []domain.Factor) string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = c.t(FactorInlineKey(f))
	}
	return strings.Join(names, ", ")
}
