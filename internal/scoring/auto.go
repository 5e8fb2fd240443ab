package scoring

import "risk-engine/internal/model"

const (
	autoBasePremium        = 15000
	autoScorePenaltyRate   = 2000
	autoVehicleAgeRate     = 500
	autoAccidentSurcharges = 5000
)

// Auto scores a vehicle and its primary driver. The premium is annual.
func Auto(in model.AutoRiskInput) model.RiskAssessmentResult {
	vehicleAge := float64(in.VehicleAge)
	accidents := float64(in.AccidentHistory)

	raw := 10 - (0.2*vehicleAge + 0.1*float64(100-in.DriverAge)/10 + 0.5*accidents + 0.0001*float64(in.Mileage))
	score := finalizeScore(raw)

	premium := autoBasePremium +
		(10-score)*autoScorePenaltyRate +
		vehicleAge*autoVehicleAgeRate +
		accidents*autoAccidentSurcharges

	return result(model.InsuranceAuto, score, premium)
}
