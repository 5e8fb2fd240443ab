package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-engine/internal/model"
	"risk-engine/internal/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.NewStore(time.Minute, 8)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func autoAssessment(id string, score float64) model.Assessment {
	return model.Assessment{
		AssessmentID:  id,
		InsuranceType: model.InsuranceAuto,
		Auto:          &model.AutoRiskInput{VehicleAge: 3, DriverAge: 30, Mileage: 12000},
		Result:        model.RiskAssessmentResult{RiskScore: score, Tier: model.TierModerateRisk, PremiumEstimate: 18000},
	}
}

func TestPut_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	prev, err := s.Put(ctx, "s1", autoAssessment("first", 6))
	require.NoError(t, err)
	assert.Nil(t, prev)

	prev, err = s.Put(ctx, "s1", autoAssessment("second", 7.5))
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.Equal(t, "first", prev.AssessmentID)

	got, err := s.Get(ctx, "s1", model.InsuranceAuto)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.AssessmentID)
	assert.Equal(t, 7.5, got.Result.RiskScore)
	require.NotNil(t, got.Auto)
	assert.Equal(t, 12000, got.Auto.Mileage)
}

func TestAssessments_OnlyCompletedLines(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Put(ctx, "s1", autoAssessment("a", 6))
	require.NoError(t, err)
	_, err = s.Put(ctx, "s1", model.Assessment{
		InsuranceType: model.InsuranceHealth,
		Result:        model.RiskAssessmentResult{RiskScore: 8, PremiumEstimate: 5000},
	})
	require.NoError(t, err)

	records, err := s.Assessments(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Contains(t, records, model.InsuranceAuto)
	assert.Contains(t, records, model.InsuranceHealth)
	assert.NotContains(t, records, model.InsuranceLife)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Put(ctx, "s1", autoAssessment("a", 6))
	require.NoError(t, err)

	records, err := s.Assessments(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, records)

	got, err := s.Get(ctx, "s2", model.InsuranceAuto)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClaims(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	got, err := s.LatestClaim(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.PutClaim(ctx, "s1", model.ClaimReview{ReviewID: "r1"}))
	require.NoError(t, s.PutClaim(ctx, "s1", model.ClaimReview{
		ReviewID: "r2",
		Claim:    model.ClaimFraudInput{ClaimAmount: 2500, ClaimType: model.ClaimProperty},
		Result:   model.FraudAssessmentResult{FraudScore: 5, Band: model.FraudBandLow},
	}))

	got, err = s.LatestClaim(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r2", got.ReviewID)
	assert.Equal(t, model.ClaimProperty, got.Claim.ClaimType)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, err := s.Put(ctx, "s1", autoAssessment("a", 6))
	require.NoError(t, err)
	require.NoError(t, s.PutClaim(ctx, "s1", model.ClaimReview{ReviewID: "r1"}))
	_, err = s.Put(ctx, "s2", autoAssessment("b", 6))
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx, "s1"))

	records, err := s.Assessments(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, records)
	claim, err := s.LatestClaim(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, claim)

	records, err = s.Assessments(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCanceledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Put(ctx, "s1", autoAssessment("a", 6))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			_, err := s.Put(ctx, id, autoAssessment(id, float64(i%10+1)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 16; i++ {
		got, err := s.Get(ctx, fmt.Sprintf("s%d", i), model.InsuranceAuto)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, fmt.Sprintf("s%d", i), got.AssessmentID)
	}
}

func TestExpiredEntriesReadAsAbsent(t *testing.T) {
	ctx := context.Background()
	s, err := session.NewStore(time.Second, 8)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Put(ctx, "s1", autoAssessment("a", 6))
	require.NoError(t, err)

	time.Sleep(2100 * time.Millisecond)

	got, err := s.Get(ctx, "s1", model.InsuranceAuto)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWriteRefreshesWholeSession(t *testing.T) {
	ctx := context.Background()
	s, err := session.NewStore(2*time.Second, 8)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Put(ctx, "s1", autoAssessment("a", 6))
	require.NoError(t, err)

	time.Sleep(2 * time.Second)
	require.NoError(t, s.PutClaim(ctx, "s1", model.ClaimReview{ReviewID: "r1"}))
	time.Sleep(1500 * time.Millisecond)

	records, err := s.Assessments(ctx, "s1")
	require.NoError(t, err)
	assert.Contains(t, records, model.InsuranceAuto, "auto outlives its own TTL because the claim write refreshed it")

	claim, err := s.LatestClaim(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, claim)
	assert.Equal(t, "r1", claim.ReviewID)
}
