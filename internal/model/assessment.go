package model

import (
	"math"
	"strings"
)

type AutoRiskInput struct {
	VehicleAge      int `json:"vehicle_age" validate:"gte=0"`
	DriverAge       int `json:"driver_age" validate:"gte=18"`
	AccidentHistory int `json:"accident_history" validate:"gte=0"`
	Mileage         int `json:"mileage" validate:"gte=0"`
}

type PropertyRiskInput struct {
	PropertyAge      int              `json:"property_age" validate:"gte=0"`
	LocationRisk     LocationRisk     `json:"location_risk" validate:"required,enum"`
	ConstructionType ConstructionType `json:"construction_type" validate:"required,enum"`
	FloodZone        bool             `json:"flood_zone"`
}

type CyberRiskInput struct {
	NumEmployees      int  `json:"num_employees" validate:"gte=0"`
	HasSecurityPolicy bool `json:"has_security_policy"`
	PastIncidents     int  `json:"past_incidents" validate:"gte=0"`
	UsesMFA           bool `json:"uses_mfa"`
}

type HealthRiskInput struct {
	Age               int               `json:"age" validate:"gte=18"`
	BMI               float64           `json:"bmi" validate:"gt=0"`
	Smoking           bool              `json:"smoking"`
	ExerciseFrequency ExerciseFrequency `json:"exercise_frequency" validate:"required,enum"`
	ChronicConditions int               `json:"chronic_conditions" validate:"gte=0"`
	FamilyHistory     bool              `json:"family_history"`

	// Optional body measurements; used to derive BMI when it is not supplied.
	WeightKg float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	HeightCm float64 `json:"height_cm,omitempty" validate:"omitempty,gt=0"`
}

type LifeRiskInput struct {
	Age            int            `json:"age" validate:"gte=18"`
	Gender         Gender         `json:"gender" validate:"required,enum"`
	OccupationRisk OccupationRisk `json:"occupation_risk" validate:"required,enum"`
	Lifestyle      Lifestyle      `json:"lifestyle" validate:"required,enum"`
	CoverageAmount float64        `json:"coverage_amount" validate:"gte=0"`
	MedicalExams   bool           `json:"medical_exams"`
}

type ClaimFraudInput struct {
	ClaimAmount    float64   `json:"claim_amount" validate:"gte=0"`
	ClaimType      ClaimType `json:"claim_type" validate:"required,enum"`
	SuspiciousDocs bool      `json:"suspicious_docs"`
	PriorFraud     bool      `json:"prior_fraud"`
}

// Tier is the risk-score band that selects a recommendation template.
type Tier string

const (
	TierHighRisk     Tier = "high_risk"
	TierModerateRisk Tier = "moderate_risk"
	TierLowRisk      Tier = "low_risk"
)

type RiskAssessmentResult struct {
	RiskScore       float64  `json:"risk_score"`
	Tier            Tier     `json:"tier"`
	Recommendation  []string `json:"recommendation"`
	PremiumEstimate int64    `json:"premium_estimate"`
	MortalityRate   *float64 `json:"mortality_rate,omitempty"`
}

// RecommendationText renders the guidance lines as one block, headline first.
func (r RiskAssessmentResult) RecommendationText() string {
	if len(r.Recommendation) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(r.Recommendation[0])
	for _, line := range r.Recommendation[1:] {
		b.WriteString("\n• ")
		b.WriteString(line)
	}
	return b.String()
}

type FraudBand string

const (
	FraudBandLow       FraudBand = "low"
	FraudBandModerate  FraudBand = "moderate"
	FraudBandPotential FraudBand = "potential_fraud"
)

type FraudAssessmentResult struct {
	FraudScore int       `json:"fraud_score"`
	Band       FraudBand `json:"band"`
	Alerts     []string  `json:"alerts"`
}

// Summary joins the alerts in generation order.
func (r FraudAssessmentResult) Summary() string {
	return strings.Join(r.Alerts, "\n")
}

// Assessment is the stored record of one insurance-type submission. Exactly
// one input pointer matching InsuranceType is set.
type Assessment struct {
	AssessmentID  string        `json:"assessment_id"`
	InsuranceType InsuranceType `json:"insurance_type"`
	AssessedAt    string        `json:"assessed_at"`

	Auto     *AutoRiskInput     `json:"auto,omitempty"`
	Property *PropertyRiskInput `json:"property,omitempty"`
	Cyber    *CyberRiskInput    `json:"cyber,omitempty"`
	Health   *HealthRiskInput   `json:"health,omitempty"`
	Life     *LifeRiskInput     `json:"life,omitempty"`

	Result RiskAssessmentResult `json:"result"`
}

// Input returns the typed input record set on the assessment, or nil.
func (a Assessment) Input() any {
	switch a.InsuranceType {
	case InsuranceAuto:
		return a.Auto
	case InsuranceProperty:
		return a.Property
	case InsuranceCyber:
		return a.Cyber
	case InsuranceHealth:
		return a.Health
	case InsuranceLife:
		return a.Life
	}
	return nil
}

// AnnualPremium normalizes the premium to a yearly figure. Health premiums
// are monthly. The figure saturates at math.MaxInt64.
func (a Assessment) AnnualPremium() int64 {
	if a.InsuranceType != InsuranceHealth {
		return a.Result.PremiumEstimate
	}
	if a.Result.PremiumEstimate > math.MaxInt64/12 {
		return math.MaxInt64
	}
	return a.Result.PremiumEstimate * 12
}

type ClaimReview struct {
	ReviewID   string                `json:"review_id"`
	ReviewedAt string                `json:"reviewed_at"`
	Claim      ClaimFraudInput       `json:"claim"`
	Result     FraudAssessmentResult `json:"result"`
}

type PortfolioEntry struct {
	InsuranceType   InsuranceType `json:"insurance_type"`
	RiskScore       float64       `json:"risk_score"`
	Tier            Tier          `json:"tier"`
	PremiumEstimate int64         `json:"premium_estimate"`
	AnnualPremium   int64         `json:"annual_premium"`
}

type PortfolioSnapshot struct {
	CompletedCount      int              `json:"completed_count"`
	AverageRiskScore    float64          `json:"average_risk_score"`
	FraudIndicatorCount int              `json:"fraud_indicator_count"`
	TotalAnnualPremium  int64            `json:"total_annual_premium"`
	PotentialSavings    int64            `json:"potential_savings"`
	CompletionRate      float64          `json:"completion_rate"`
	Entries             []PortfolioEntry `json:"entries"`
}
