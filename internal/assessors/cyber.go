package assessors

import (
	json "github.com/goccy/go-json"

	"risk-engine/internal/model"
	"risk-engine/internal/scoring"
	"risk-engine/internal/validation"
)

type CyberAssessor struct{}

func (h *CyberAssessor) Decode(props json.RawMessage, a *model.Assessment) []model.CalculationMessage {
	var f cyberFields
	if msgs := decodeFields(props, &f); len(msgs) > 0 {
		return msgs
	}
	in := f.input()
	a.Cyber = &in
	return nil
}

func (h *CyberAssessor) Validate(a *model.Assessment) []model.CalculationMessage {
	return validation.Messages(a.Cyber)
}

func (h *CyberAssessor) Apply(a *model.Assessment) {
	a.Result = scoring.Cyber(*a.Cyber)
}
