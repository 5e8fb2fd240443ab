package assessors

import (
	json "github.com/goccy/go-json"

	"risk-engine/internal/model"
)

// Assessor defines the contract for one insurance line. Decode fills the
// typed input on the assessment, Validate reports problems with it, and Apply
// scores it. Decode returns only CRITICAL messages; the input is set when it
// returns none.
type Assessor interface {
	Decode(props json.RawMessage, a *model.Assessment) []model.CalculationMessage
	Validate(a *model.Assessment) []model.CalculationMessage
	Apply(a *model.Assessment)
}
