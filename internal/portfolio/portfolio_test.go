package portfolio_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-engine/internal/model"
	"risk-engine/internal/portfolio"
)

func TestSummarize_Empty(t *testing.T) {
	snap := portfolio.Summarize(nil)

	assert.Equal(t, 0, snap.CompletedCount)
	assert.Equal(t, 0.0, snap.AverageRiskScore)
	assert.Equal(t, int64(0), snap.TotalAnnualPremium)
	assert.Equal(t, 0.0, snap.CompletionRate)
	assert.Equal(t, 0, snap.FraudIndicatorCount)
	assert.Empty(t, snap.Entries)
}

func TestSummarize_SingleAuto(t *testing.T) {
	snap := portfolio.Summarize(map[model.InsuranceType]model.Assessment{
		model.InsuranceAuto: {
			InsuranceType: model.InsuranceAuto,
			Auto:          &model.AutoRiskInput{VehicleAge: 3, DriverAge: 35, AccidentHistory: 1, Mileage: 10000},
			Result:        model.RiskAssessmentResult{RiskScore: 6, Tier: model.TierModerateRisk, PremiumEstimate: 18000},
		},
	})

	assert.Equal(t, 1, snap.CompletedCount)
	assert.Equal(t, 6.0, snap.AverageRiskScore)
	assert.Equal(t, int64(18000), snap.TotalAnnualPremium)
	assert.Equal(t, int64(2700), snap.PotentialSavings)
	assert.Equal(t, 20.0, snap.CompletionRate)
	assert.Equal(t, 0, snap.FraudIndicatorCount)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, model.InsuranceAuto, snap.Entries[0].InsuranceType)
}

func TestSummarize_HealthPremiumIsAnnualized(t *testing.T) {
	snap := portfolio.Summarize(map[model.InsuranceType]model.Assessment{
		model.InsuranceHealth: {
			InsuranceType: model.InsuranceHealth,
			Health:        &model.HealthRiskInput{Age: 40, BMI: 24, ExerciseFrequency: model.ExerciseOften},
			Result:        model.RiskAssessmentResult{RiskScore: 8, Tier: model.TierLowRisk, PremiumEstimate: 5000},
		},
	})

	assert.Equal(t, int64(60000), snap.TotalAnnualPremium)
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, int64(5000), snap.Entries[0].PremiumEstimate)
	assert.Equal(t, int64(60000), snap.Entries[0].AnnualPremium)
}

func TestSummarize_PotentialSavingsTruncates(t *testing.T) {
	snap := portfolio.Summarize(map[model.InsuranceType]model.Assessment{
		model.InsuranceLife: {
			InsuranceType: model.InsuranceLife,
			Result:        model.RiskAssessmentResult{RiskScore: 9, Tier: model.TierLowRisk, PremiumEstimate: 5281},
		},
	})

	assert.Equal(t, int64(792), snap.PotentialSavings)
}

func TestSummarize_TotalSaturates(t *testing.T) {
	snap := portfolio.Summarize(map[model.InsuranceType]model.Assessment{
		model.InsuranceLife: {
			InsuranceType: model.InsuranceLife,
			Result:        model.RiskAssessmentResult{RiskScore: 1, Tier: model.TierHighRisk, PremiumEstimate: math.MaxInt64},
		},
		model.InsuranceHealth: {
			InsuranceType: model.InsuranceHealth,
			Result:        model.RiskAssessmentResult{RiskScore: 1, Tier: model.TierHighRisk, PremiumEstimate: math.MaxInt64 / 10},
		},
		model.InsuranceAuto: {
			InsuranceType: model.InsuranceAuto,
			Result:        model.RiskAssessmentResult{RiskScore: 1, Tier: model.TierHighRisk, PremiumEstimate: 1},
		},
	})

	assert.Equal(t, int64(math.MaxInt64), snap.TotalAnnualPremium)
	require.Len(t, snap.Entries, 3)
	assert.Equal(t, int64(math.MaxInt64), snap.Entries[1].AnnualPremium, "health annualization saturates")
	assert.Positive(t, snap.PotentialSavings)
}

func TestSummarize_FraudIndicatorsAreIndependent(t *testing.T) {
	records := map[model.InsuranceType]model.Assessment{
		model.InsuranceLife: {
			InsuranceType: model.InsuranceLife,
			Life:          &model.LifeRiskInput{Age: 30, Gender: model.GenderFemale},
			Result:        model.RiskAssessmentResult{RiskScore: 9.5, PremiumEstimate: 5280},
		},
		model.InsuranceHealth: {
			InsuranceType: model.InsuranceHealth,
			Health:        &model.HealthRiskInput{Age: 60, BMI: 32, ChronicConditions: 4},
			Result:        model.RiskAssessmentResult{RiskScore: 1.3, PremiumEstimate: 30750},
		},
		model.InsuranceAuto: {
			InsuranceType: model.InsuranceAuto,
			Auto:          &model.AutoRiskInput{VehicleAge: 12, DriverAge: 20, AccidentHistory: 3, Mileage: 40000},
			Result:        model.RiskAssessmentResult{RiskScore: 2.5, PremiumEstimate: 50000},
		},
		model.InsuranceCyber: {
			InsuranceType: model.InsuranceCyber,
			Cyber:         &model.CyberRiskInput{NumEmployees: 100, PastIncidents: 3},
			Result:        model.RiskAssessmentResult{RiskScore: 4, PremiumEstimate: 300000},
		},
	}

	snap := portfolio.Summarize(records)

	// auto and health trip their thresholds; three cyber incidents do not.
	assert.Equal(t, 2, snap.FraudIndicatorCount)
	assert.Equal(t, 4, snap.CompletedCount)
	assert.Equal(t, 80.0, snap.CompletionRate)
	assert.InDelta(t, 4.325, snap.AverageRiskScore, 1e-9)
	assert.Equal(t, int64(5280+30750*12+50000+300000), snap.TotalAnnualPremium)

	var order []model.InsuranceType
	for _, e := range snap.Entries {
		order = append(order, e.InsuranceType)
	}
	assert.Equal(t, []model.InsuranceType{
		model.InsuranceAuto, model.InsuranceCyber, model.InsuranceHealth, model.InsuranceLife,
	}, order)
}

func TestSummarize_AllLinesComplete(t *testing.T) {
	records := map[model.InsuranceType]model.Assessment{}
	for _, typ := range model.AllInsuranceTypes {
		records[typ] = model.Assessment{
			InsuranceType: typ,
			Result:        model.RiskAssessmentResult{RiskScore: 7, PremiumEstimate: 1000},
		}
	}

	snap := portfolio.Summarize(records)

	assert.Equal(t, 5, snap.CompletedCount)
	assert.Equal(t, 100.0, snap.CompletionRate)
	assert.Equal(t, 7.0, snap.AverageRiskScore)
	assert.Equal(t, int64(4*1000+12*1000), snap.TotalAnnualPremium)
	// no inputs recorded, so no heuristic can fire
	assert.Equal(t, 0, snap.FraudIndicatorCount)
}

func TestWriteCSV(t *testing.T) {
	snap := portfolio.Summarize(map[model.InsuranceType]model.Assessment{
		model.InsuranceAuto: {
			InsuranceType: model.InsuranceAuto,
			Result:        model.RiskAssessmentResult{RiskScore: 6, Tier: model.TierModerateRisk, PremiumEstimate: 18000},
		},
		model.InsuranceHealth: {
			InsuranceType: model.InsuranceHealth,
			Result:        model.RiskAssessmentResult{RiskScore: 8.4, Tier: model.TierLowRisk, PremiumEstimate: 13250},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, portfolio.WriteCSV(&buf, snap))

	want := "insurance_type,risk_score,tier,premium_estimate,annual_premium\n" +
		"auto,6.0,moderate_risk,18000,18000\n" +
		"health,8.4,low_risk,13250,159000\n"
	assert.Equal(t, want, buf.String())
}
