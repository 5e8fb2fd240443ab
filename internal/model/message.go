package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeUnknownInsuranceType = "UNKNOWN_INSURANCE_TYPE"
	CodeUnknownScenario      = "UNKNOWN_SCENARIO"
	CodeMalformedProperties  = "MALFORMED_PROPERTIES"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeLowMileage           = "LOW_MILEAGE"
	CodeImplausibleBMI       = "IMPLAUSIBLE_BMI"
	CodeStorageFailure       = "STORAGE_FAILURE"
)

// HasCritical reports whether any message is CRITICAL.
func HasCritical(msgs []CalculationMessage) bool {
	for _, m := range msgs {
		if m.Level == LevelCritical {
			return true
		}
	}
	return false
}
