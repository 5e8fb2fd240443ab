// Package scenarios holds the demo inputs used to walk through every
// insurance line and the claims review.
package scenarios

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"risk-engine/internal/model"
)

// Scenario is a named sample input for one insurance line. ExpectedRisk is
// the label the sample was written for; it is informational only.
type Scenario struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	InsuranceType model.InsuranceType `json:"insurance_type"`
	ExpectedRisk  string              `json:"expected_risk"`
	Notes         string              `json:"notes"`
	Input         any                 `json:"input"`
}

// Properties returns the input in the form an assessment instruction carries.
func (s Scenario) Properties() (json.RawMessage, error) {
	b, err := json.Marshal(s.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal scenario %s", s.ID)
	}
	return b, nil
}

type ClaimScenario struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	ExpectedFraud string                `json:"expected_fraud"`
	Notes         string                `json:"notes"`
	Claim         model.ClaimFraudInput `json:"claim"`
}

var assessments = []Scenario{
	{
		ID:            "auto-young-driver",
		Name:          "Young Driver - High Risk",
		InsuranceType: model.InsuranceAuto,
		ExpectedRisk:  "High",
		Notes:         "Young driver with recent accident, high mileage",
		Input:         model.AutoRiskInput{VehicleAge: 2, DriverAge: 19, AccidentHistory: 1, Mileage: 25000},
	},
	{
		ID:            "auto-experienced-driver",
		Name:          "Experienced Driver - Low Risk",
		InsuranceType: model.InsuranceAuto,
		ExpectedRisk:  "Low",
		Notes:         "Mature driver, clean record, moderate usage",
		Input:         model.AutoRiskInput{VehicleAge: 5, DriverAge: 45, AccidentHistory: 0, Mileage: 12000},
	},
	{
		ID:            "auto-senior-driver",
		Name:          "Senior Driver - Moderate Risk",
		InsuranceType: model.InsuranceAuto,
		ExpectedRisk:  "Moderate",
		Notes:         "Senior driver, older vehicle, low mileage",
		Input:         model.AutoRiskInput{VehicleAge: 8, DriverAge: 70, AccidentHistory: 0, Mileage: 8000},
	},
	{
		ID:            "property-urban-apartment",
		Name:          "Urban Apartment - Low Risk",
		InsuranceType: model.InsuranceProperty,
		ExpectedRisk:  "Low",
		Notes:         "New concrete construction in safe area",
		Input: model.PropertyRiskInput{
			PropertyAge:      5,
			LocationRisk:     model.LocationLow,
			ConstructionType: model.ConstructionConcrete,
		},
	},
	{
		ID:            "property-rural-wood-house",
		Name:          "Rural Wood House - High Risk",
		InsuranceType: model.InsuranceProperty,
		ExpectedRisk:  "High",
		Notes:         "Old wood construction in flood-prone area",
		Input: model.PropertyRiskInput{
			PropertyAge:      25,
			LocationRisk:     model.LocationHigh,
			ConstructionType: model.ConstructionWood,
			FloodZone:        true,
		},
	},
	{
		ID:            "property-suburban-brick-home",
		Name:          "Suburban Brick Home - Moderate Risk",
		InsuranceType: model.InsuranceProperty,
		ExpectedRisk:  "Moderate",
		Notes:         "Mid-age brick home in moderate risk area",
		Input: model.PropertyRiskInput{
			PropertyAge:      15,
			LocationRisk:     model.LocationMedium,
			ConstructionType: model.ConstructionBrick,
		},
	},
	{
		ID:            "cyber-small-startup",
		Name:          "Small Startup - High Risk",
		InsuranceType: model.InsuranceCyber,
		ExpectedRisk:  "High",
		Notes:         "Small company with minimal security measures",
		Input:         model.CyberRiskInput{NumEmployees: 15, PastIncidents: 1},
	},
	{
		ID:            "cyber-enterprise",
		Name:          "Enterprise Company - Low Risk",
		InsuranceType: model.InsuranceCyber,
		ExpectedRisk:  "Low",
		Notes:         "Large company with comprehensive security",
		Input:         model.CyberRiskInput{NumEmployees: 500, HasSecurityPolicy: true, UsesMFA: true},
	},
	{
		ID:            "cyber-growing-company",
		Name:          "Growing Company - Moderate Risk",
		InsuranceType: model.InsuranceCyber,
		ExpectedRisk:  "Moderate",
		Notes:         "Growing company with some security measures",
		Input:         model.CyberRiskInput{NumEmployees: 100, HasSecurityPolicy: true, PastIncidents: 1, UsesMFA: true},
	},
	{
		ID:            "health-young-adult",
		Name:          "Young Healthy Adult - Low Risk",
		InsuranceType: model.InsuranceHealth,
		ExpectedRisk:  "Low",
		Notes:         "Young, healthy lifestyle, no risk factors",
		Input:         model.HealthRiskInput{Age: 25, BMI: 22.5, ExerciseFrequency: model.ExerciseDaily},
	},
	{
		ID:            "health-middle-aged-smoker",
		Name:          "Middle-aged Smoker - High Risk",
		InsuranceType: model.InsuranceHealth,
		ExpectedRisk:  "High",
		Notes:         "Multiple risk factors, poor health habits",
		Input: model.HealthRiskInput{
			Age:               50,
			BMI:               32,
			Smoking:           true,
			ExerciseFrequency: model.ExerciseNever,
			ChronicConditions: 2,
			FamilyHistory:     true,
		},
	},
	{
		ID:            "health-active-senior",
		Name:          "Active Senior - Moderate Risk",
		InsuranceType: model.InsuranceHealth,
		ExpectedRisk:  "Moderate",
		Notes:         "Senior but active with minimal conditions",
		Input:         model.HealthRiskInput{Age: 65, BMI: 24, ExerciseFrequency: model.ExerciseOften, ChronicConditions: 1},
	},
	{
		ID:            "life-young-professional",
		Name:          "Young Professional - Low Risk",
		InsuranceType: model.InsuranceLife,
		ExpectedRisk:  "Low",
		Notes:         "Young professional with healthy lifestyle",
		Input: model.LifeRiskInput{
			Age:            30,
			Gender:         model.GenderFemale,
			OccupationRisk: model.OccupationLowRisk,
			Lifestyle:      model.LifestyleHealthy,
			CoverageAmount: 500000,
			MedicalExams:   true,
		},
	},
	{
		ID:            "life-high-risk-occupation",
		Name:          "High-Risk Occupation - High Risk",
		InsuranceType: model.InsuranceLife,
		ExpectedRisk:  "High",
		Notes:         "Dangerous job, risky lifestyle, no medical exams",
		Input: model.LifeRiskInput{
			Age:            45,
			Gender:         model.GenderMale,
			OccupationRisk: model.OccupationHighRisk,
			Lifestyle:      model.LifestyleRisky,
			CoverageAmount: 1000000,
		},
	},
	{
		ID:            "life-middle-aged-average",
		Name:          "Middle-aged Average - Moderate Risk",
		InsuranceType: model.InsuranceLife,
		ExpectedRisk:  "Moderate",
		Notes:         "Average profile with moderate coverage",
		Input: model.LifeRiskInput{
			Age:            40,
			Gender:         model.GenderMale,
			OccupationRisk: model.OccupationMediumRisk,
			Lifestyle:      model.LifestyleAverage,
			CoverageAmount: 750000,
			MedicalExams:   true,
		},
	},
}

var claims = []ClaimScenario{
	{
		ID:            "claim-suspicious-large",
		Name:          "Suspicious Large Claim",
		ExpectedFraud: "High",
		Notes:         "Large claim with suspicious documentation and fraud history",
		Claim:         model.ClaimFraudInput{ClaimAmount: 50000, ClaimType: model.ClaimAuto, SuspiciousDocs: true, PriorFraud: true},
	},
	{
		ID:            "claim-regular-small",
		Name:          "Regular Small Claim",
		ExpectedFraud: "Low",
		Notes:         "Small claim with clean documentation and no history",
		Claim:         model.ClaimFraudInput{ClaimAmount: 2500, ClaimType: model.ClaimProperty},
	},
	{
		ID:            "claim-moderate-cyber",
		Name:          "Moderate Cyber Claim",
		ExpectedFraud: "Moderate",
		Notes:         "Cyber claim with inherently higher risk profile",
		Claim:         model.ClaimFraudInput{ClaimAmount: 15000, ClaimType: model.ClaimCyber},
	},
}

// Assessments returns the catalog for one line, or every line when t is empty.
func Assessments(t model.InsuranceType) []Scenario {
	out := make([]Scenario, 0, len(assessments))
	for _, s := range assessments {
		if t == "" || s.InsuranceType == t {
			out = append(out, s)
		}
	}
	return out
}

// Lookup finds a scenario by id. The scenario must belong to line t.
func Lookup(t model.InsuranceType, id string) (Scenario, bool) {
	for _, s := range assessments {
		if s.ID == id && s.InsuranceType == t {
			return s, true
		}
	}
	return Scenario{}, false
}

func Claims() []ClaimScenario {
	out := make([]ClaimScenario, len(claims))
	copy(out, claims)
	return out
}

func LookupClaim(id string) (ClaimScenario, bool) {
	for _, c := range claims {
		if c.ID == id {
			return c, true
		}
	}
	return ClaimScenario{}, false
}
