// Package scoring holds the per-line risk formulas. Every function is pure:
// the same input always yields the same result and nothing is read or written
// outside the arguments.
package scoring

import (
	"math"
	"strconv"

	"risk-engine/internal/model"
)

const (
	minScore = 1
	maxScore = 10

	highRiskBelow     = 4
	moderateRiskBelow = 7
)

// finalizeScore rounds a raw linear score to one decimal and clamps it to
// [1,10]. Rounding happens first, as the premium formulas depend on it.
func finalizeScore(raw float64) float64 {
	return clamp(roundTo(raw, 1), minScore, maxScore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundTo rounds half-to-even on the exact binary value, the same result
// decimal formatting produces.
func roundTo(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// truncate drops the fractional part of a premium. Negative figures cannot
// arise for valid input but are floored at zero; figures beyond int64
// saturate at math.MaxInt64.
func truncate(premium float64) int64 {
	switch {
	case !(premium > 0):
		return 0
	case premium >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(premium)
}

// TierFor maps a risk score onto its recommendation band.
func TierFor(score float64) model.Tier {
	switch {
	case score < highRiskBelow:
		return model.TierHighRisk
	case score < moderateRiskBelow:
		return model.TierModerateRisk
	default:
		return model.TierLowRisk
	}
}

func result(line model.InsuranceType, score float64, premium float64) model.RiskAssessmentResult {
	tier := TierFor(score)
	return model.RiskAssessmentResult{
		RiskScore:       score,
		Tier:            tier,
		Recommendation:  recommendationFor(line, tier),
		PremiumEstimate: truncate(premium),
	}
}

// lookup returns table[key], or def when the key is unmapped.
func lookup[K comparable](table map[K]float64, key K, def float64) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}
