package assessors

import (
	"fmt"

	json "github.com/goccy/go-json"

	"risk-engine/internal/model"
	"risk-engine/internal/scoring"
	"risk-engine/internal/validation"
)

const (
	minPlausibleBMI = 10
	maxPlausibleBMI = 60
)

type HealthAssessor struct{}

// Decode derives bmi from weight_kg and height_cm when bmi is not supplied.
func (h *HealthAssessor) Decode(props json.RawMessage, a *model.Assessment) []model.CalculationMessage {
	var f healthFields
	if msgs := decodeFields(props, &f); len(msgs) > 0 {
		return msgs
	}
	in := f.input()
	if f.BMI == nil {
		in.BMI = scoring.BMI(in.WeightKg, in.HeightCm)
	}
	a.Health = &in
	return nil
}

func (h *HealthAssessor) Validate(a *model.Assessment) []model.CalculationMessage {
	msgs := validation.Messages(a.Health)
	if len(msgs) > 0 {
		return msgs
	}

	if a.Health.BMI < minPlausibleBMI || a.Health.BMI > maxPlausibleBMI {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeImplausibleBMI,
			Field:   "bmi",
			Message: fmt.Sprintf("BMI %.1f is outside the plausible range %d-%d", a.Health.BMI, minPlausibleBMI, maxPlausibleBMI),
		})
	}
	return msgs
}

func (h *HealthAssessor) Apply(a *model.Assessment) {
	a.Result = scoring.Health(*a.Health)
}
