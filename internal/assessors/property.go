package assessors

import (
	json "github.com/goccy/go-json"

	"risk-engine/internal/model"
	"risk-engine/internal/scoring"
	"risk-engine/internal/validation"
)

type PropertyAssessor struct{}

func (h *PropertyAssessor) Decode(props json.RawMessage, a *model.Assessment) []model.CalculationMessage {
	var f propertyFields
	if msgs := decodeFields(props, &f); len(msgs) > 0 {
		return msgs
	}
	in := f.input()
	a.Property = &in
	return nil
}

func (h *PropertyAssessor) Validate(a *model.Assessment) []model.CalculationMessage {
	return validation.Messages(a.Property)
}

func (h *PropertyAssessor) Apply(a *model.Assessment) {
	a.Result = scoring.Property(*a.Property)
}
