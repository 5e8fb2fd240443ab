package scoring

import "risk-engine/internal/model"

const (
	lifeBaseRatePerMille = 12
	maleRateLoading      = 1.1
	noMedicalExamLoading = 1.2
)

var occupationAdjustment = map[model.OccupationRisk]float64{
	model.OccupationLowRisk:    0,
	model.OccupationMediumRisk: -1,
	model.OccupationHighRisk:   -2,
}

var occupationMultiplier = map[model.OccupationRisk]float64{
	model.OccupationLowRisk:    1.0,
	model.OccupationMediumRisk: 1.3,
	model.OccupationHighRisk:   2.0,
}

var lifestyleAdjustment = map[model.Lifestyle]float64{
	model.LifestyleHealthy: 0.5,
	model.LifestyleAverage: 0,
	model.LifestyleRisky:   -1.5,
}

var lifestyleMultiplier = map[model.Lifestyle]float64{
	model.LifestyleHealthy: 0.8,
	model.LifestyleAverage: 1.0,
	model.LifestyleRisky:   1.5,
}

// Life scores mortality risk and prices cover per mille of the coverage
// amount. The premium is annual.
//
// The mortality rate is not clamped and exceeds plausible probability bounds
// for very high ages.
func Life(in model.LifeRiskInput) model.RiskAssessmentResult {
	male := in.Gender == model.GenderMale

	raw := 10 - float64(in.Age-18)*0.08
	if male {
		raw -= 0.5
	}
	raw += lookup(occupationAdjustment, in.OccupationRisk, 0)
	raw += lookup(lifestyleAdjustment, in.Lifestyle, 0)
	if in.MedicalExams {
		raw += 0.5
	}
	score := finalizeScore(raw)

	genderMultiplier := 1.0
	if male {
		genderMultiplier = maleRateLoading
	}
	rate := lifeBaseRatePerMille * (1 + float64(in.Age-25)*0.02) * genderMultiplier
	rate *= lookup(occupationMultiplier, in.OccupationRisk, 1.0)
	rate *= lookup(lifestyleMultiplier, in.Lifestyle, 1.0)
	if !in.MedicalExams {
		rate *= noMedicalExamLoading
	}
	premium := (in.CoverageAmount / 1000) * rate

	res := result(model.InsuranceLife, score, premium)
	mortality := MortalityRate(in.Age, in.Gender)
	res.MortalityRate = &mortality
	return res
}

// MortalityRate is the simplified annual mortality estimate, rounded to two
// decimals.
func MortalityRate(age int, gender model.Gender) float64 {
	rate := 0.1 + float64(age-20)*0.01
	if gender == model.GenderMale {
		rate += 0.1
	}
	return roundTo(rate, 2)
}
