// Package portfolio summarizes whichever assessments a session has completed
// into a single cross-line snapshot.
package portfolio

import (
	"math"

	"github.com/shopspring/decimal"

	"risk-engine/internal/model"
)

const (
	autoAccidentThreshold  = 2
	cyberIncidentThreshold = 3
	healthChronicThreshold = 3

	savingsRate = 0.15
)

// Summarize builds the snapshot from the completed assessments. A missing key
// means the line has not been assessed.
func Summarize(records map[model.InsuranceType]model.Assessment) model.PortfolioSnapshot {
	snap := model.PortfolioSnapshot{Entries: []model.PortfolioEntry{}}

	sum := decimal.Zero
	for _, t := range model.AllInsuranceTypes {
		a, ok := records[t]
		if !ok {
			continue
		}

		snap.CompletedCount++
		sum = sum.Add(decimal.NewFromFloat(a.Result.RiskScore))
		if hasFraudIndicator(a) {
			snap.FraudIndicatorCount++
		}

		annual := a.AnnualPremium()
		snap.TotalAnnualPremium = addPremium(snap.TotalAnnualPremium, annual)
		snap.Entries = append(snap.Entries, model.PortfolioEntry{
			InsuranceType:   t,
			RiskScore:       a.Result.RiskScore,
			Tier:            a.Result.Tier,
			PremiumEstimate: a.Result.PremiumEstimate,
			AnnualPremium:   annual,
		})
	}

	if snap.CompletedCount > 0 {
		snap.AverageRiskScore = sum.Div(decimal.NewFromInt(int64(snap.CompletedCount))).InexactFloat64()
	}
	snap.PotentialSavings = int64(float64(snap.TotalAnnualPremium) * savingsRate)
	snap.CompletionRate = decimal.NewFromInt(int64(snap.CompletedCount)).
		Div(decimal.NewFromInt(int64(len(model.AllInsuranceTypes)))).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()

	return snap
}

// addPremium adds two non-negative premiums, saturating at math.MaxInt64.
func addPremium(total, p int64) int64 {
	if p > math.MaxInt64-total {
		return math.MaxInt64
	}
	return total + p
}

// hasFraudIndicator applies the input-level heuristics. Each line contributes
// at most one indicator.
func hasFraudIndicator(a model.Assessment) bool {
	switch a.InsuranceType {
	case model.InsuranceAuto:
		return a.Auto != nil && a.Auto.AccidentHistory > autoAccidentThreshold
	case model.InsuranceCyber:
		return a.Cyber != nil && a.Cyber.PastIncidents > cyberIncidentThreshold
	case model.InsuranceHealth:
		return a.Health != nil && a.Health.ChronicConditions > healthChronicThreshold
	}
	return false
}
