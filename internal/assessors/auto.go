package assessors

import (
	"fmt"

	json "github.com/goccy/go-json"

	"risk-engine/internal/model"
	"risk-engine/internal/scoring"
	"risk-engine/internal/validation"
)

const lowMileageBelow = 1000

type AutoAssessor struct{}

func (h *AutoAssessor) Decode(props json.RawMessage, a *model.Assessment) []model.CalculationMessage {
	var f autoFields
	if msgs := decodeFields(props, &f); len(msgs) > 0 {
		return msgs
	}
	in := f.input()
	a.Auto = &in
	return nil
}

func (h *AutoAssessor) Validate(a *model.Assessment) []model.CalculationMessage {
	msgs := validation.Messages(a.Auto)
	if len(msgs) > 0 {
		return msgs
	}

	if a.Auto.Mileage < lowMileageBelow {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeLowMileage,
			Field:   "mileage",
			Message: fmt.Sprintf("Annual mileage %d seems unusually low", a.Auto.Mileage),
		})
	}
	return msgs
}

func (h *AutoAssessor) Apply(a *model.Assessment) {
	a.Result = scoring.Auto(*a.Auto)
}
