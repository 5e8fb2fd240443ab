package scoring

import "risk-engine/internal/model"

const (
	cyberBasePremium       = 50000
	cyberPerEmployee       = 1000
	noPolicyLoading        = 1.5
	noMFALoading           = 1.3
	cyberIncidentSurcharge = 25000
)

// Cyber scores an organisation's security posture. Loadings for a missing
// policy and missing MFA multiply the base before incident surcharges are
// added.
func Cyber(in model.CyberRiskInput) model.RiskAssessmentResult {
	incidents := float64(in.PastIncidents)

	raw := 10 - (0.001*float64(in.NumEmployees) + 0.5*incidents)
	if !in.HasSecurityPolicy {
		raw -= 2
	}
	if !in.UsesMFA {
		raw -= 1
	}
	score := finalizeScore(raw)

	premium := cyberBasePremium + float64(in.NumEmployees)*cyberPerEmployee
	if !in.HasSecurityPolicy {
		premium *= noPolicyLoading
	}
	if !in.UsesMFA {
		premium *= noMFALoading
	}
	premium += incidents * cyberIncidentSurcharge

	return result(model.InsuranceCyber, score, premium)
}
