package assessors

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"risk-engine/internal/model"
	"risk-engine/internal/validation"
)

// The *Fields types are the wire forms of the input records. Pointer fields
// tell an absent value apart from its zero value; enum strings are checked
// by the input record itself.

type autoFields struct {
	VehicleAge      *int `json:"vehicle_age" validate:"required"`
	DriverAge       *int `json:"driver_age" validate:"required"`
	AccidentHistory *int `json:"accident_history" validate:"required"`
	Mileage         *int `json:"mileage" validate:"required"`
}

func (f autoFields) input() model.AutoRiskInput {
	return model.AutoRiskInput{
		VehicleAge:      *f.VehicleAge,
		DriverAge:       *f.DriverAge,
		AccidentHistory: *f.AccidentHistory,
		Mileage:         *f.Mileage,
	}
}

type propertyFields struct {
	PropertyAge      *int                   `json:"property_age" validate:"required"`
	LocationRisk     model.LocationRisk     `json:"location_risk"`
	ConstructionType model.ConstructionType `json:"construction_type"`
	FloodZone        *bool                  `json:"flood_zone" validate:"required"`
}

func (f propertyFields) input() model.PropertyRiskInput {
	return model.PropertyRiskInput{
		PropertyAge:      *f.PropertyAge,
		LocationRisk:     f.LocationRisk,
		ConstructionType: f.ConstructionType,
		FloodZone:        *f.FloodZone,
	}
}

type cyberFields struct {
	NumEmployees      *int  `json:"num_employees" validate:"required"`
	HasSecurityPolicy *bool `json:"has_security_policy" validate:"required"`
	PastIncidents     *int  `json:"past_incidents" validate:"required"`
	UsesMFA           *bool `json:"uses_mfa" validate:"required"`
}

func (f cyberFields) input() model.CyberRiskInput {
	return model.CyberRiskInput{
		NumEmployees:      *f.NumEmployees,
		HasSecurityPolicy: *f.HasSecurityPolicy,
		PastIncidents:     *f.PastIncidents,
		UsesMFA:           *f.UsesMFA,
	}
}

// healthFields leaves bmi optional: it may be derived from the measurements.
type healthFields struct {
	Age               *int                    `json:"age" validate:"required"`
	BMI               *float64                `json:"bmi"`
	Smoking           *bool                   `json:"smoking" validate:"required"`
	ExerciseFrequency model.ExerciseFrequency `json:"exercise_frequency"`
	ChronicConditions *int                    `json:"chronic_conditions" validate:"required"`
	FamilyHistory     *bool                   `json:"family_history" validate:"required"`
	WeightKg          float64                 `json:"weight_kg"`
	HeightCm          float64                 `json:"height_cm"`
}

func (f healthFields) input() model.HealthRiskInput {
	in := model.HealthRiskInput{
		Age:               *f.Age,
		Smoking:           *f.Smoking,
		ExerciseFrequency: f.ExerciseFrequency,
		ChronicConditions: *f.ChronicConditions,
		FamilyHistory:     *f.FamilyHistory,
		WeightKg:          f.WeightKg,
		HeightCm:          f.HeightCm,
	}
	if f.BMI != nil {
		in.BMI = *f.BMI
	}
	return in
}

type lifeFields struct {
	Age            *int                 `json:"age" validate:"required"`
	Gender         model.Gender         `json:"gender"`
	OccupationRisk model.OccupationRisk `json:"occupation_risk"`
	Lifestyle      model.Lifestyle      `json:"lifestyle"`
	CoverageAmount *float64             `json:"coverage_amount" validate:"required"`
	MedicalExams   *bool                `json:"medical_exams" validate:"required"`
}

func (f lifeFields) input() model.LifeRiskInput {
	return model.LifeRiskInput{
		Age:            *f.Age,
		Gender:         f.Gender,
		OccupationRisk: f.OccupationRisk,
		Lifestyle:      f.Lifestyle,
		CoverageAmount: *f.CoverageAmount,
		MedicalExams:   *f.MedicalExams,
	}
}

type claimFields struct {
	ClaimAmount    *float64        `json:"claim_amount" validate:"required"`
	ClaimType      model.ClaimType `json:"claim_type"`
	SuspiciousDocs *bool           `json:"suspicious_docs" validate:"required"`
	PriorFraud     *bool           `json:"prior_fraud" validate:"required"`
}

func (f claimFields) input() model.ClaimFraudInput {
	return model.ClaimFraudInput{
		ClaimAmount:    *f.ClaimAmount,
		ClaimType:      f.ClaimType,
		SuspiciousDocs: *f.SuspiciousDocs,
		PriorFraud:     *f.PriorFraud,
	}
}

// DecodeClaim reads a claim and reports absent fields. The returned messages
// are all CRITICAL; the claim is only meaningful when there are none.
func DecodeClaim(raw json.RawMessage) (model.ClaimFraudInput, []model.CalculationMessage) {
	var f claimFields
	if msgs := decodeFields(raw, &f); len(msgs) > 0 {
		return model.ClaimFraudInput{}, msgs
	}
	return f.input(), nil
}

var errNoProperties = errors.New("properties are required")

// decodeFields unmarshals props into the wire form f and reports every
// absent required field as INVALID_INPUT.
func decodeFields(props json.RawMessage, f any) []model.CalculationMessage {
	if len(props) == 0 || string(props) == "null" {
		return []model.CalculationMessage{malformed(errNoProperties)}
	}
	if err := json.Unmarshal(props, f); err != nil {
		return []model.CalculationMessage{malformed(errors.Wrap(err, "decode properties"))}
	}
	return validation.Messages(f)
}

func malformed(err error) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeMalformedProperties,
		Message: err.Error(),
	}
}
