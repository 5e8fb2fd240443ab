package model

import json "github.com/goccy/go-json"

type AssessmentResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	SessionID              string `json:"session_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages    []CalculationMessage  `json:"messages"`
	Assessments []ProcessedAssessment `json:"assessments"`
	Portfolio   PortfolioSnapshot     `json:"portfolio"`
}

type ProcessedAssessment struct {
	Instruction               AssessmentInstruction `json:"instruction"`
	Assessment                *Assessment           `json:"assessment,omitempty"`
	Replaced                  bool                  `json:"replaced"`
	Changes                   json.RawMessage       `json:"changes,omitempty"`
	CalculationMessageIndexes []int                 `json:"calculation_message_indexes,omitempty"`
}

type FraudResponse struct {
	SessionID string               `json:"session_id"`
	Review    *ClaimReview         `json:"review,omitempty"`
	Messages  []CalculationMessage `json:"messages"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

type PortfolioResponse struct {
	SessionID   string            `json:"session_id"`
	Portfolio   PortfolioSnapshot `json:"portfolio"`
	LatestClaim *ClaimReview      `json:"latest_claim,omitempty"`
}
