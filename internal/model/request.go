package model

import json "github.com/goccy/go-json"

type AssessmentRequest struct {
	SessionID   string                  `json:"session_id"`
	Assessments []AssessmentInstruction `json:"assessments"`
}

// AssessmentInstruction asks for one insurance line to be scored. Either
// Properties or ScenarioID supplies the input.
type AssessmentInstruction struct {
	AssessmentID  string          `json:"assessment_id,omitempty"`
	InsuranceType InsuranceType   `json:"insurance_type"`
	ScenarioID    string          `json:"scenario_id,omitempty"`
	Properties    json.RawMessage `json:"properties,omitempty"`
}

// FraudRequest carries either a claim or the id of a demo claim scenario.
// Claim is kept raw so absent fields can be told apart from zero values.
type FraudRequest struct {
	SessionID  string          `json:"session_id"`
	ScenarioID string          `json:"scenario_id,omitempty"`
	Claim      json.RawMessage `json:"claim,omitempty"`
}
