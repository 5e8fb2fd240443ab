package assessors

import (
	json "github.com/goccy/go-json"

	"risk-engine/internal/model"
	"risk-engine/internal/scoring"
	"risk-engine/internal/validation"
)

type LifeAssessor struct{}

func (h *LifeAssessor) Decode(props json.RawMessage, a *model.Assessment) []model.CalculationMessage {
	var f lifeFields
	if msgs := decodeFields(props, &f); len(msgs) > 0 {
		return msgs
	}
	in := f.input()
	a.Life = &in
	return nil
}

func (h *LifeAssessor) Validate(a *model.Assessment) []model.CalculationMessage {
	return validation.Messages(a.Life)
}

func (h *LifeAssessor) Apply(a *model.Assessment) {
	a.Result = scoring.Life(*a.Life)
}
