// Package fraud scores insurance claims for fraud risk with an ordered table
// of rules. Each matching rule adds to the score and appends exactly one
// alert; alerts are never reordered or deduplicated.
package fraud

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"risk-engine/internal/model"
)

const (
	baseScore = 5
	minScore  = 1
	maxScore  = 10

	potentialFraudFrom = 8
	moderateRiskFrom   = 6
)

// Facts is the environment rule expressions are evaluated against.
type Facts struct {
	ClaimAmount    float64
	ClaimType      string
	SuspiciousDocs bool
	PriorFraud     bool
}

// Rule adds Delta to the score and appends Alert when When evaluates true.
type Rule struct {
	ID    string
	When  string
	Delta int
	Alert string
}

// DefaultRules is evaluated top to bottom. The amount rules are mutually
// exclusive, as are the three category rules.
var DefaultRules = []Rule{
	{
		ID:    "high_claim_amount",
		When:  `ClaimAmount > 500000`,
		Delta: 2,
		Alert: "High claim amount detected (>₹5 lakhs).",
	},
	{
		ID:    "moderate_claim_amount",
		When:  `ClaimAmount > 200000 && ClaimAmount <= 500000`,
		Delta: 1,
		Alert: "Moderate claim amount (>₹2 lakhs) - requires review.",
	},
	{
		ID:    "suspicious_docs",
		When:  `SuspiciousDocs`,
		Delta: 2,
		Alert: "Suspicious documents flagged for verification.",
	},
	{
		ID:    "prior_fraud",
		When:  `PriorFraud`,
		Delta: 1,
		Alert: "Prior fraud history found in records.",
	},
	{
		ID:    "cyber_category",
		When:  `ClaimType == "Cyber"`,
		Delta: 1,
		Alert: "Cyber claim: inherently higher risk category.",
	},
	{
		ID:    "high_value_auto",
		When:  `ClaimType == "Auto" && ClaimAmount > 300000`,
		Delta: 1,
		Alert: "High-value auto claim requires additional verification.",
	},
	{
		ID:    "high_value_property",
		When:  `ClaimType == "Property" && ClaimAmount > 1000000`,
		Delta: 1,
		Alert: "High-value property claim - consider site inspection.",
	},
}

var bandAlerts = map[model.FraudBand]string{
	model.FraudBandPotential: "POTENTIAL FRAUD DETECTED! Immediate review and investigation recommended. " +
		"Actions: Assign to fraud investigation team, request additional documentation.",
	model.FraudBandModerate: "MODERATE FRAUD RISK. Enhanced review and verification required. " +
		"Actions: Secondary review, verify claim details, contact claimant.",
	model.FraudBandLow: "LOW FRAUD RISK. Standard processing can proceed. " +
		"Actions: Normal claim processing workflow.",
}

var checklists = map[model.ClaimType]string{
	model.ClaimAuto:     "Auto-specific checks: Vehicle registration, accident report, repair estimates.",
	model.ClaimProperty: "Property-specific checks: Property ownership, damage assessment, repair quotes.",
	model.ClaimCyber:    "Cyber-specific checks: Incident report, forensic analysis, business impact assessment.",
	model.ClaimHealth:   "Health-specific checks: Medical reports, hospital bills, treatment verification.",
	model.ClaimLife:     "Life-specific checks: Death certificate, medical history, beneficiary verification.",
}

type compiledRule struct {
	Rule
	program *vm.Program
}

// Detector evaluates a compiled rule table. It holds no mutable state and is
// safe for concurrent use.
type Detector struct {
	rules []compiledRule
}

// NewDetector compiles rules in the given order.
func NewDetector(rules []Rule) (*Detector, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		program, err := expr.Compile(r.When, expr.Env(Facts{}), expr.AsBool())
		if err != nil {
			return nil, errors.Wrapf(err, "compile fraud rule %s", r.ID)
		}
		compiled = append(compiled, compiledRule{Rule: r, program: program})
	}
	return &Detector{rules: compiled}, nil
}

var defaultDetector = mustDetector(DefaultRules)

func mustDetector(rules []Rule) *Detector {
	d, err := NewDetector(rules)
	if err != nil {
		panic(err)
	}
	return d
}

// Detect scores a claim with the default rule table.
func Detect(in model.ClaimFraudInput) model.FraudAssessmentResult {
	return defaultDetector.Detect(in)
}

// Detect scores a claim. A rule whose expression fails to evaluate is
// treated as not matched.
func (d *Detector) Detect(in model.ClaimFraudInput) model.FraudAssessmentResult {
	facts := Facts{
		ClaimAmount:    in.ClaimAmount,
		ClaimType:      string(in.ClaimType),
		SuspiciousDocs: in.SuspiciousDocs,
		PriorFraud:     in.PriorFraud,
	}

	score := baseScore
	alerts := make([]string, 0, len(d.rules)+2)
	for _, r := range d.rules {
		out, err := expr.Run(r.program, facts)
		if err != nil {
			continue
		}
		if matched, ok := out.(bool); ok && matched {
			score += r.Delta
			alerts = append(alerts, r.Alert)
		}
	}

	score = clamp(score)
	band := BandFor(score)
	alerts = append(alerts, bandAlerts[band])
	if checklist, ok := checklists[in.ClaimType]; ok {
		alerts = append(alerts, checklist)
	}

	return model.FraudAssessmentResult{
		FraudScore: score,
		Band:       band,
		Alerts:     alerts,
	}
}

// BandFor maps a fraud score onto its review band.
func BandFor(score int) model.FraudBand {
	switch {
	case score >= potentialFraudFrom:
		return model.FraudBandPotential
	case score >= moderateRiskFrom:
		return model.FraudBandModerate
	default:
		return model.FraudBandLow
	}
}

func clamp(score int) int {
	return min(max(score, minScore), maxScore)
}
