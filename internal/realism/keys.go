package realism

import "github.com/alexanderramin/triad/internal/domain"

// Catalog keys referenced by the analysis rules and the summary helpers.
const (
	KeyBalancedDistribution = "analysis_balanced_distribution"
	KeyMaintainBalance      = "analysis_maintain_balance"
	KeyHighDemands          = "analysis_high_demands"
	KeyHighRiskFailure      = "analysis_high_risk_failure"
	KeyTeamPressure         = "analysis_team_pressure"

	KeyExtremeTime          = "analysis_extreme_time"
	KeyTimeTestingRisk      = "analysis_time_testing_risk"
	KeyTimeBugsImpact       = "analysis_time_bugs_impact"
	KeyTimePhasesRec        = "analysis_time_phases_rec"
	KeyHighBudget           = "analysis_high_budget"
	KeyBudgetROIRisk        = "analysis_budget_roi_risk"
	KeyBudgetExpectations   = "analysis_budget_expectations"
	KeyBudgetJustification  = "analysis_budget_justification"
	KeyExtremeQuality       = "analysis_extreme_quality"
	KeyQualityPerfectionism = "analysis_quality_perfectionism"
	KeyQualityNeverDone     = "analysis_quality_never_done"
	KeyQualityCriteria      = "analysis_quality_criteria"

	KeyLimitedAreas        = "analysis_limited_areas"
	KeyVeryLittleTime      = "analysis_very_little_time"
	KeyTimeDesignRisk      = "analysis_time_design_risk"
	KeyTimeQuickFixes      = "analysis_time_quick_fixes"
	KeyTimeFallback        = "analysis_time_fallback"
	KeyLimitedBudget       = "analysis_limited_budget"
	KeyBudgetUnpaidRisk    = "analysis_budget_unpaid_risk"
	KeyBudgetExpertLimit   = "analysis_budget_expert_limit"
	KeyBudgetOpenSource    = "analysis_budget_opensource"
	KeyLowQuality          = "analysis_low_quality"
	KeyQualityExpectations = "analysis_quality_expectations"
	KeyQualityReputation   = "analysis_quality_reputation"
	KeyQualityMinimum      = "analysis_quality_minimum"

	KeySpeedLowBudget  = "analysis_speed_low_budget"
	KeyQualityNoTime   = "analysis_quality_no_time"
	KeyMoneyLowQuality = "analysis_money_low_quality"

	KeyUrgentUnrealistic   = "analysis_urgent_unrealistic"
	KeyConsiderAdjustments = "analysis_consider_adjustments"

	KeyUnicornDescription    = "unicorn_description"
	KeyUnicornNoFocus        = "unicorn_reason_no_focus"
	KeyUnicornNoCompromises  = "unicorn_reason_no_compromises"
	KeyUnicornIndecision     = "unicorn_reason_indecision"
	KeyUnicornRecommendation = "unicorn_recommendation"
)

// Fallback keys shown when a list of the analysis is empty.
const (
	KeyNoReasons         = "basic_setting_no_reasons"
	KeyNoRisks           = "no_serious_risks"
	KeyNoImpacts         = "no_specific_impacts"
	KeyNoRecommendations = "no_specific_recommendations"
)

// FactorLabelKey is the capitalized slider label.
func FactorLabelKey(f domain.Factor) string { return string(f) }

// FactorInlineKey is the lower-case name used inside analysis sentences.
func FactorInlineKey(f domain.Factor) string { return "factor_" + string(f) }

// IntensityKey is the catalog key for an intensity label.
func IntensityKey(i domain.Intensity) string { return string(i) }

// SummaryKey picks the quick-summary sentence for a score.
func SummaryKey(score int) string {
	switch {
	case score >= 75:
		return "summary_excellent"
	case score >= 50:
		return "summary_good"
	case score >= 25:
		return "summary_problematic"
	default:
		return "summary_unrealistic"
	}
}

// CategoryTitleKey is the heading shown for a category.
func CategoryTitleKey(c domain.Category) string {
	if c == domain.CategoryUnicorn {
		return "unicorn_project"
	}
	return string(c)
}

// CategoryDescriptionKey is the one-line explanation under the heading.
func CategoryDescriptionKey(c domain.Category) string {
	if c == domain.CategoryUnicorn {
		return "unicorn_warning"
	}
	return string(c) + "_desc"
}

// WithFallbacks replaces every empty list with its localized placeholder.
func WithFallbacks(a Analysis, loc Localizer) Analysis {
	fill := func(list []string, key string) []string {
		if len(list) == 0 {
			return []string{loc.T(key)}
		}
		return list
	}
	return Analysis{
		Reasoning:        fill(a.Reasoning, KeyNoReasons),
		Risks:            fill(a.Risks, KeyNoRisks),
		RealWorldImpacts: fill(a.RealWorldImpacts, KeyNoImpacts),
		Recommendations:  fill(a.Recommendations, KeyNoRecommendations),
	}
}
