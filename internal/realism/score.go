package realism

import (
	"math"

	"github.com/alexanderramin/triad/internal/domain"
)

// PerfectBalanceDeviation is the total deviation below which a triple counts
// as perfectly balanced and skips every penalty and bonus.
const PerfectBalanceDeviation = 3.0

const deviationWeight = 0.8

type AdjustmentCode string

const (
	AdjustAllThreeHigh     AdjustmentCode = "ALL_THREE_HIGH"
	AdjustTwoVeryHigh      AdjustmentCode = "TWO_VERY_HIGH"
	AdjustOneExtreme       AdjustmentCode = "ONE_EXTREME"
	AdjustOneVeryLow       AdjustmentCode = "ONE_VERY_LOW"
	AdjustDominantFocused  AdjustmentCode = "DOMINANT_FOCUSED"
	AdjustPerfectBalance   AdjustmentCode = "PERFECT_BALANCE"
	AdjustBalanceDeviation AdjustmentCode = "BALANCE_DEVIATION"
)

// Adjustment records one rule that moved the score. Penalties carry a
// negative Delta.
type Adjustment struct {
	Code  AdjustmentCode `json:"code"`
	Delta float64        `json:"delta"`
}

// Result is the full score computation for one triple.
type Result struct {
	State       domain.TriangleState `json:"state"`
	Deviation   float64              `json:"deviation"`
	Balance     float64              `json:"balance"`
	Adjustments []Adjustment         `json:"adjustments"`
	Score       int                  `json:"score"`
}

// scoreRule is one penalty or bonus. Rules are independent and additive;
// several may fire for the same triple.
type scoreRule struct {
	code  AdjustmentCode
	delta float64
	when  func(v [3]float64) bool
}

var scoreRules = []scoreRule{
	{AdjustAllThreeHigh, -30, func(v [3]float64) bool { return countAbove(v, 40) == 3 }},
	{AdjustTwoVeryHigh, -25, func(v [3]float64) bool { return countAbove(v, 50) >= 2 }},
	{AdjustOneExtreme, -20, func(v [3]float64) bool { return countAbove(v, 70) >= 1 }},
	{AdjustOneVeryLow, -15, func(v [3]float64) bool { return countBelow(v, 10) >= 1 }},
	{AdjustDominantFocused, 5, dominantWithModerateOthers},
}

// Evaluate scores a triple and keeps the intermediate values and the rules
// that fired.
func Evaluate(s domain.TriangleState) Result {
	n := domain.Normalize(s)
	v := n.Values()

	deviation := math.Abs(v[0]-domain.Balanced) + math.Abs(v[1]-domain.Balanced) + math.Abs(v[2]-domain.Balanced)
	result := Result{State: n, Deviation: deviation}

	if deviation < PerfectBalanceDeviation {
		result.Balance = 100
		result.Score = 100
		result.Adjustments = []Adjustment{{Code: AdjustPerfectBalance, Delta: 0}}
		return result
	}

	result.Balance = math.Max(0, 100-deviation*deviationWeight)
	result.Adjustments = append(result.Adjustments, Adjustment{
		Code:  AdjustBalanceDeviation,
		Delta: result.Balance - 100,
	})

	total := result.Balance
	for _, r := range scoreRules {
		if r.when(v) {
			total += r.delta
			result.Adjustments = append(result.Adjustments, Adjustment{Code: r.code, Delta: r.delta})
		}
	}

	result.Score = int(math.Round(math.Max(0, math.Min(100, total))))
	return result
}

// Score returns the 0-100 realism score for a triple.
func Score(s domain.TriangleState) int {
	return Evaluate(s).Score
}

// CategoryFor maps a score onto its qualitative band.
func CategoryFor(score int) domain.Category {
	switch {
	case score >= 90:
		return domain.CategoryUnicorn
	case score >= 75:
		return domain.CategoryHighlyRealistic
	case score >= 50:
		return domain.CategoryRealisticWithCompromises
	case score >= 25:
		return domain.CategoryProblematic
	default:
		return domain.CategoryUnrealistic
	}
}

// dominantWithModerateOthers finds the first share in [45,60]; the bonus
// applies when both remaining shares sit in [20,35].
func dominantWithModerateOthers(v [3]float64) bool {
	dominant := -1
	for i, x := range v {
		if x >= 45 && x <= 60 {
			dominant = i
			break
		}
	}
	if dominant < 0 {
		return false
	}
	for i, x := range v {
		if i == dominant {
			continue
		}
		if x < 20 || x > 35 {
			return false
		}
	}
	return true
}

func countAbove(v [3]float64, limit float64) int {
	n := 0
	for _, x := range v {
		if x > limit {
			n++
		}
	}
	return n
}

func countBelow(v [3]float64, limit float64) int {
	n := 0
	for _, x := range v {
		if x < limit {
			n++
		}
	}
	return n
}
