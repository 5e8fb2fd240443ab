package scoring

import (
	"math"

	"risk-engine/internal/model"
)

const (
	healthBasePremium      = 8000
	healthAgeRate          = 200
	healthBMIRate          = 500
	healthIdealBMI         = 22.5
	healthSmokerSurcharge  = 5000
	healthChronicSurcharge = 3000
	healthFamilySurcharge  = 2000
)

var exerciseAdjustment = map[model.ExerciseFrequency]float64{
	model.ExerciseNever:     -1.5,
	model.ExerciseRarely:    -1,
	model.ExerciseSometimes: 0,
	model.ExerciseOften:     0.5,
	model.ExerciseDaily:     1,
}

// Health scores an individual's health profile. The premium is MONTHLY;
// multiply by 12 before comparing it with the other lines.
func Health(in model.HealthRiskInput) model.RiskAssessmentResult {
	raw := 10 - float64(in.Age-18)*0.05

	switch {
	case in.BMI < 18.5 || in.BMI > 30:
		raw -= 1
	case in.BMI > 25:
		raw -= 0.5
	}
	if in.Smoking {
		raw -= 2
	}
	raw += lookup(exerciseAdjustment, in.ExerciseFrequency, 0)
	raw -= float64(in.ChronicConditions) * 0.8
	if in.FamilyHistory {
		raw -= 1
	}
	score := finalizeScore(raw)

	ageFactor := float64(max(1, in.Age-25) * healthAgeRate)
	bmiFactor := math.Max(0, math.Abs(in.BMI-healthIdealBMI)*healthBMIRate)
	var smokingFactor, familyFactor float64
	if in.Smoking {
		smokingFactor = healthSmokerSurcharge
	}
	if in.FamilyHistory {
		familyFactor = healthFamilySurcharge
	}
	chronicFactor := float64(in.ChronicConditions * healthChronicSurcharge)

	premium := healthBasePremium + ageFactor + bmiFactor + smokingFactor + chronicFactor + familyFactor

	return result(model.InsuranceHealth, score, premium)
}

// BMI derives the body mass index from a weight in kilograms and a height in
// centimetres. It returns 0 when either measurement is missing.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}
