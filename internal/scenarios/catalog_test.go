package scenarios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-engine/internal/assessors"
	"risk-engine/internal/fraud"
	"risk-engine/internal/model"
	"risk-engine/internal/scenarios"
)

func TestEveryScenarioScores(t *testing.T) {
	all := scenarios.Assessments("")
	require.Len(t, all, 15)

	seen := map[string]bool{}
	for _, s := range all {
		t.Run(s.ID, func(t *testing.T) {
			assert.False(t, seen[s.ID], "duplicate id")
			seen[s.ID] = true

			h, ok := assessors.Get(s.InsuranceType)
			require.True(t, ok)

			props, err := s.Properties()
			require.NoError(t, err)

			a := model.Assessment{InsuranceType: s.InsuranceType}
			require.Empty(t, h.Decode(props, &a))
			assert.False(t, model.HasCritical(h.Validate(&a)))
			h.Apply(&a)

			assert.GreaterOrEqual(t, a.Result.RiskScore, 1.0)
			assert.LessOrEqual(t, a.Result.RiskScore, 10.0)
			assert.GreaterOrEqual(t, a.Result.PremiumEstimate, int64(0))
			assert.NotEmpty(t, a.Result.Recommendation)
		})
	}
}

func TestAssessments_FilterByLine(t *testing.T) {
	for _, typ := range model.AllInsuranceTypes {
		list := scenarios.Assessments(typ)
		assert.Len(t, list, 3, typ)
		for _, s := range list {
			assert.Equal(t, typ, s.InsuranceType)
		}
	}
}

func TestLookup(t *testing.T) {
	s, ok := scenarios.Lookup(model.InsuranceProperty, "property-rural-wood-house")
	require.True(t, ok)
	assert.Equal(t, "Rural Wood House - High Risk", s.Name)

	_, ok = scenarios.Lookup(model.InsuranceAuto, "property-rural-wood-house")
	assert.False(t, ok)

	_, ok = scenarios.Lookup(model.InsuranceAuto, "missing")
	assert.False(t, ok)
}

func TestClaimScenarios(t *testing.T) {
	want := map[string]model.FraudBand{
		"claim-suspicious-large": model.FraudBandPotential,
		"claim-regular-small":    model.FraudBandLow,
		"claim-moderate-cyber":   model.FraudBandModerate,
	}

	list := scenarios.Claims()
	require.Len(t, list, len(want))
	for _, c := range list {
		assert.Equal(t, want[c.ID], fraud.Detect(c.Claim).Band, c.ID)
	}

	c, ok := scenarios.LookupClaim("claim-regular-small")
	require.True(t, ok)
	assert.Equal(t, 2500.0, c.Claim.ClaimAmount)
}
