package realism

import (
	"testing"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// keyLocalizer echoes keys so assertions read as the selected catalog keys.
type keyLocalizer struct{}

func (keyLocalizer) T(key string) string { return key }

func explain(s domain.TriangleState) (int, Analysis) {
	score := Score(s)
	return score, Explain(s, score, keyLocalizer{})
}

func TestExplain_UnicornIgnoresTriple(t *testing.T) {
	want := Analysis{
		Reasoning:        []string{KeyUnicornDescription},
		Risks:            []string{KeyUnicornNoFocus, KeyUnicornNoCompromises, KeyUnicornIndecision},
		RealWorldImpacts: []string{KeyUnicornDescription},
		Recommendations:  []string{KeyUnicornRecommendation},
	}
	for _, s := range []domain.TriangleState{
		domain.DefaultState(),
		{Time: 90, Budget: 5, Quality: 5},
	} {
		got := Explain(s, 95, keyLocalizer{})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Explain(%+v, 95) mismatch (-want +got):\n%s", s, diff)
		}
	}
}

func TestExplain_ExtremeTime(t *testing.T) {
	score, got := explain(domain.TriangleState{Time: 90, Budget: 5, Quality: 5})
	assert.Equal(t, 0, score)

	want := Analysis{
		Reasoning: []string{
			"analysis_extreme_time (90%)",
			"analysis_limited_areas (factor_budget, factor_quality)",
			"analysis_limited_budget (5%)",
			"analysis_low_quality (5%)",
		},
		Risks: []string{
			KeyTimeTestingRisk,
			KeyBudgetUnpaidRisk,
			KeyQualityExpectations,
		},
		RealWorldImpacts: []string{
			KeyTimeBugsImpact,
			KeyBudgetExpertLimit,
			KeyQualityReputation,
			KeySpeedLowBudget,
		},
		Recommendations: []string{
			KeyUrgentUnrealistic,
			KeyTimePhasesRec,
			KeyBudgetOpenSource,
			KeyQualityMinimum,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestExplain_BalancedBelowUnicorn(t *testing.T) {
	score, got := explain(domain.TriangleState{Time: 40, Budget: 30, Quality: 30})
	assert.Equal(t, 89, score)

	want := Analysis{
		Reasoning:       []string{"analysis_balanced_distribution (40%, 30%, 30%)"},
		Recommendations: []string{KeyMaintainBalance},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestExplain_QualityWithoutTime(t *testing.T) {
	score, got := explain(domain.TriangleState{Time: 20, Budget: 30, Quality: 50})
	assert.Equal(t, 78, score)

	want := Analysis{RealWorldImpacts: []string{KeyQualityNoTime}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestExplain_ConsiderAdjustmentsIsPrepended(t *testing.T) {
	score, got := explain(domain.TriangleState{Time: 15, Budget: 25, Quality: 60})
	assert.Equal(t, 57, score)

	want := Analysis{
		Reasoning:        []string{"analysis_limited_areas (factor_time)"},
		RealWorldImpacts: []string{KeyQualityNoTime},
		Recommendations:  []string{KeyConsiderAdjustments},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestExplain_HighBudgetStarvesQuality(t *testing.T) {
	score, got := explain(domain.TriangleState{Time: 25, Budget: 65, Quality: 10})
	assert.Equal(t, 49, score)

	want := Analysis{
		Reasoning: []string{
			KeyHighBudget + " (65%)",
			KeyLimitedAreas + " (factor_quality)",
			KeyLowQuality + " (10%)",
		},
		Risks: []string{KeyBudgetROIRisk, KeyQualityExpectations},
		RealWorldImpacts: []string{
			KeyBudgetExpectations,
			KeyQualityReputation,
			KeyMoneyLowQuality,
		},
		Recommendations: []string{
			KeyConsiderAdjustments,
			KeyBudgetJustification,
			KeyQualityMinimum,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

func TestExplain_ExtremeQuality(t *testing.T) {
	score, got := explain(domain.TriangleState{Time: 20, Budget: 15, Quality: 65})
	assert.Equal(t, 49, score)

	want := Analysis{
		Reasoning: []string{
			KeyExtremeQuality + " (65%)",
			KeyLimitedAreas + " (factor_budget)",
		},
		Risks:            []string{KeyQualityPerfectionism},
		RealWorldImpacts: []string{KeyQualityNeverDone, KeyQualityNoTime},
		Recommendations:  []string{KeyConsiderAdjustments, KeyQualityCriteria},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("analysis mismatch (-want +got):\n%s", diff)
	}
}

// Scores of 30 still get the milder advice; 29 and below are urgent.
func TestExplain_ScoreBandBoundary(t *testing.T) {
	cases := []struct {
		state   domain.TriangleState
		score   int
		pctQual string
		first   string
	}{
		{domain.TriangleState{Time: 8, Budget: 24.3, Quality: 67.7}, 30, "68%", KeyConsiderAdjustments},
		{domain.TriangleState{Time: 8, Budget: 23.7, Quality: 68.3}, 29, "68%", KeyUrgentUnrealistic},
	}
	for _, tc := range cases {
		score, got := explain(tc.state)
		assert.Equal(t, tc.score, score, "%+v", tc.state)

		want := Analysis{
			Reasoning: []string{
				KeyExtremeQuality + " (" + tc.pctQual + ")",
				KeyLimitedAreas + " (factor_time)",
				KeyVeryLittleTime + " (8%)",
			},
			Risks:            []string{KeyQualityPerfectionism, KeyTimeDesignRisk},
			RealWorldImpacts: []string{KeyQualityNeverDone, KeyTimeQuickFixes, KeyQualityNoTime},
			Recommendations:  []string{tc.first, KeyQualityCriteria, KeyTimeFallback},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Explain(%+v) mismatch (-want +got):\n%s", tc.state, diff)
		}
	}
}

func TestExplain_ListsAreNeverNil(t *testing.T) {
	_, got := explain(domain.TriangleState{Time: 20, Budget: 30, Quality: 50})
	assert.NotNil(t, got.Reasoning)
	assert.NotNil(t, got.Risks)
	assert.NotNil(t, got.Recommendations)
}

// Two shares above 50 cannot occur once normalized, so the rule is driven
// with a raw context.
func TestHighDemandsRule(t *testing.T) {
	var rule AnalysisRule
	for _, r := range AnalysisRules {
		if r.Name == "high_demands" {
			rule = r
		}
	}
	c := ruleContext{
		n:     domain.TriangleState{Time: 60, Budget: 55, Quality: 5},
		score: 10,
		loc:   keyLocalizer{},
	}
	assert.True(t, rule.when(c))

	var a Analysis
	rule.apply(c, &a)
	assert.Equal(t, []string{"analysis_high_demands (factor_time, factor_budget)"}, a.Reasoning)
	assert.Equal(t, []string{KeyHighRiskFailure}, a.Risks)
	assert.Equal(t, []string{KeyTeamPressure}, a.RealWorldImpacts)
}

func TestMatchingRules(t *testing.T) {
	s := domain.TriangleState{Time: 90, Budget: 5, Quality: 5}
	assert.Equal(t,
		[]string{"high_time", "limited_areas", "low_budget", "low_quality", "speed_low_budget", "score_band"},
		MatchingRules(s, Score(s)))
	assert.Equal(t, []string{"unicorn"}, MatchingRules(domain.DefaultState(), 100))
}

func TestWithFallbacks(t *testing.T) {
	got := WithFallbacks(Analysis{RealWorldImpacts: []string{"x"}}, keyLocalizer{})

	assert.Equal(t, []string{KeyNoReasons}, got.Reasoning)
	assert.Equal(t, []string{KeyNoRisks}, got.Risks)
	assert.Equal(t, []string{"x"}, got.RealWorldImpacts)
	assert.Equal(t, []string{KeyNoRecommendations}, got.Recommendations)
}
