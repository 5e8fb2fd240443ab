package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-engine/internal/model"
	"risk-engine/internal/validation"
)

func TestMessages_Valid(t *testing.T) {
	assert.Nil(t, validation.Messages(model.AutoRiskInput{VehicleAge: 5, DriverAge: 30, AccidentHistory: 1, Mileage: 15000}))
	assert.Nil(t, validation.Messages(model.LifeRiskInput{
		Age:            30,
		Gender:         model.GenderFemale,
		OccupationRisk: model.OccupationLowRisk,
		Lifestyle:      model.LifestyleHealthy,
		CoverageAmount: 500000,
	}))
}

func TestMessages_OneMessagePerFieldInOrder(t *testing.T) {
	msgs := validation.Messages(model.AutoRiskInput{VehicleAge: -1, DriverAge: 16, AccidentHistory: 0, Mileage: -5})

	require.Len(t, msgs, 3)
	assert.Equal(t, "vehicle_age", msgs[0].Field)
	assert.Equal(t, "driver_age", msgs[1].Field)
	assert.Equal(t, "mileage", msgs[2].Field)
	for _, m := range msgs {
		assert.Equal(t, model.LevelCritical, m.Level)
		assert.Equal(t, model.CodeInvalidInput, m.Code)
	}
	assert.Equal(t, "driver_age must be at least 18", msgs[1].Message)
}

func TestMessages_RejectsUnknownEnum(t *testing.T) {
	msgs := validation.Messages(model.PropertyRiskInput{
		PropertyAge:      10,
		LocationRisk:     model.LocationRisk("Extreme"),
		ConstructionType: model.ConstructionBrick,
	})

	require.Len(t, msgs, 1)
	assert.Equal(t, "location_risk", msgs[0].Field)
	assert.Equal(t, `location_risk has unrecognized value "Extreme"`, msgs[0].Message)
}

func TestMessages_MissingEnumIsRequired(t *testing.T) {
	msgs := validation.Messages(model.ClaimFraudInput{ClaimAmount: 100})

	require.Len(t, msgs, 1)
	assert.Equal(t, "claim_type", msgs[0].Field)
	assert.Equal(t, "claim_type is required", msgs[0].Message)
}

func TestMessages_OptionalMeasurements(t *testing.T) {
	in := model.HealthRiskInput{Age: 30, BMI: 22, ExerciseFrequency: model.ExerciseDaily}
	assert.Nil(t, validation.Messages(in))

	in.WeightKg = -70
	msgs := validation.Messages(in)
	require.Len(t, msgs, 1)
	assert.Equal(t, "weight_kg", msgs[0].Field)
}

func TestMessages_NonStruct(t *testing.T) {
	msgs := validation.Messages(42)

	require.Len(t, msgs, 1)
	assert.Equal(t, model.LevelCritical, msgs[0].Level)
}
