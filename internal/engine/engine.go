package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"risk-engine/internal/assessors"
	"risk-engine/internal/fraud"
	"risk-engine/internal/jsonpatch"
	"risk-engine/internal/metrics"
	"risk-engine/internal/model"
	"risk-engine/internal/portfolio"
	"risk-engine/internal/scenarios"
	"risk-engine/internal/validation"
)

// Store is the per-session storage the engine reads and writes.
type Store interface {
	Put(ctx context.Context, sessionID string, a model.Assessment) (*model.Assessment, error)
	Assessments(ctx context.Context, sessionID string) (map[model.InsuranceType]model.Assessment, error)
	PutClaim(ctx context.Context, sessionID string, r model.ClaimReview) error
	LatestClaim(ctx context.Context, sessionID string) (*model.ClaimReview, error)
	Reset(ctx context.Context, sessionID string) error
}

type Engine struct {
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func New(store Store, m *metrics.Metrics, logger *slog.Logger) *Engine {
	return &Engine{
		store:   store,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Process runs the assessment instructions in order. The first CRITICAL
// message stops the batch; assessments stored before it are kept.
func (e *Engine) Process(ctx context.Context, req *model.AssessmentRequest) *model.AssessmentResponse {
	start := e.now()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	allMessages := []model.CalculationMessage{}
	processed := []model.ProcessedAssessment{}
	outcome := model.OutcomeSuccess

	record := func(msgs ...model.CalculationMessage) []int {
		var idx []int
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			idx = append(idx, m.ID)
		}
		return idx
	}

	for _, instr := range req.Assessments {
		p := model.ProcessedAssessment{Instruction: instr}

		a, msgs := e.assess(ctx, sessionID, instr, &p)
		p.CalculationMessageIndexes = record(msgs...)
		processed = append(processed, p)

		if model.HasCritical(msgs) {
			outcome = model.OutcomeFailure
			e.observe(instr.InsuranceType, model.OutcomeFailure, 0)
			e.logger.WarnContext(ctx, "assessment rejected",
				"session_id", sessionID,
				"insurance_type", instr.InsuranceType,
				"messages", len(msgs))
			break
		}

		e.observe(a.InsuranceType, model.OutcomeSuccess, a.Result.RiskScore)
		e.logger.InfoContext(ctx, "assessment scored",
			"session_id", sessionID,
			"insurance_type", a.InsuranceType,
			"risk_score", a.Result.RiskScore,
			"replaced", p.Replaced)
	}

	snapshot, err := e.Portfolio(ctx, sessionID)
	if err != nil {
		record(storageFailure(err))
		outcome = model.OutcomeFailure
	}

	elapsed := e.now().Sub(start)
	completed := start.Add(elapsed).UTC()

	return &model.AssessmentResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			SessionID:              sessionID,
			CalculationStartedAt:   start.UTC().Format(time.RFC3339),
			CalculationCompletedAt: completed.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:    allMessages,
			Assessments: processed,
			Portfolio:   snapshot,
		},
	}
}

// assess handles one instruction. It returns the scored assessment and the
// messages raised for it; a CRITICAL message means nothing was stored.
func (e *Engine) assess(ctx context.Context, sessionID string, instr model.AssessmentInstruction, p *model.ProcessedAssessment) (*model.Assessment, []model.CalculationMessage) {
	handler, ok := assessors.Get(instr.InsuranceType)
	if !ok {
		return nil, []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownInsuranceType,
			Message: fmt.Sprintf("Unknown insurance type: %s", instr.InsuranceType),
		}}
	}

	props := instr.Properties
	if instr.ScenarioID != "" {
		sc, ok := scenarios.Lookup(instr.InsuranceType, instr.ScenarioID)
		if !ok {
			return nil, []model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownScenario,
				Message: fmt.Sprintf("Unknown %s scenario: %s", instr.InsuranceType, instr.ScenarioID),
			}}
		}
		var err error
		if props, err = sc.Properties(); err != nil {
			return nil, []model.CalculationMessage{malformed(err)}
		}
	}

	a := &model.Assessment{
		AssessmentID:  instr.AssessmentID,
		InsuranceType: instr.InsuranceType,
		AssessedAt:    e.now().UTC().Format(time.RFC3339),
	}
	if a.AssessmentID == "" {
		a.AssessmentID = uuid.New().String()
	}

	if msgs := handler.Decode(props, a); len(msgs) > 0 {
		return nil, msgs
	}

	msgs := handler.Validate(a)
	if model.HasCritical(msgs) {
		return nil, msgs
	}

	handler.Apply(a)

	prev, err := e.store.Put(ctx, sessionID, *a)
	if err != nil {
		return nil, append(msgs, storageFailure(err))
	}
	p.Assessment = a

	if prev != nil {
		p.Replaced = true
		changes, err := jsonpatch.Between(changeView(*prev), changeView(*a))
		if err != nil {
			e.logger.ErrorContext(ctx, "diff against previous assessment failed",
				"session_id", sessionID,
				"insurance_type", a.InsuranceType,
				"error", err)
		} else {
			p.Changes = changes
		}
	}

	return a, msgs
}

type assessmentView struct {
	Input  any                        `json:"input"`
	Result model.RiskAssessmentResult `json:"result"`
}

// changeView drops the identifiers and timestamps that differ on every
// submission.
func changeView(a model.Assessment) assessmentView {
	return assessmentView{Input: a.Input(), Result: a.Result}
}

// Fraud scores a claim and keeps it as the session's latest review.
func (e *Engine) Fraud(ctx context.Context, req *model.FraudRequest) *model.FraudResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	resp := &model.FraudResponse{SessionID: sessionID, Messages: []model.CalculationMessage{}}

	var claim model.ClaimFraudInput
	if req.ScenarioID != "" {
		sc, ok := scenarios.LookupClaim(req.ScenarioID)
		if !ok {
			resp.Messages = numbered(model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownScenario,
				Message: fmt.Sprintf("Unknown claim scenario: %s", req.ScenarioID),
			})
			return resp
		}
		claim = sc.Claim
	} else {
		var msgs []model.CalculationMessage
		if claim, msgs = assessors.DecodeClaim(req.Claim); len(msgs) > 0 {
			resp.Messages = numbered(msgs...)
			return resp
		}
	}

	if msgs := validation.Messages(claim); len(msgs) > 0 {
		resp.Messages = numbered(msgs...)
		return resp
	}

	review := model.ClaimReview{
		ReviewID:   uuid.New().String(),
		ReviewedAt: e.now().UTC().Format(time.RFC3339),
		Claim:      claim,
		Result:     fraud.Detect(claim),
	}
	if err := e.store.PutClaim(ctx, sessionID, review); err != nil {
		resp.Messages = numbered(storageFailure(err))
		return resp
	}
	resp.Review = &review

	if e.metrics != nil {
		e.metrics.ObserveFraud(review.Result.Band)
	}
	e.logger.InfoContext(ctx, "claim scored",
		"session_id", sessionID,
		"claim_type", claim.ClaimType,
		"fraud_score", review.Result.FraudScore,
		"band", review.Result.Band)

	return resp
}

// Portfolio summarizes the session's stored assessments.
func (e *Engine) Portfolio(ctx context.Context, sessionID string) (model.PortfolioSnapshot, error) {
	records, err := e.store.Assessments(ctx, sessionID)
	if err != nil {
		return portfolio.Summarize(nil), err
	}
	return portfolio.Summarize(records), nil
}

func (e *Engine) LatestClaim(ctx context.Context, sessionID string) (*model.ClaimReview, error) {
	return e.store.LatestClaim(ctx, sessionID)
}

// Reset forgets every result of the session.
func (e *Engine) Reset(ctx context.Context, sessionID string) error {
	if err := e.store.Reset(ctx, sessionID); err != nil {
		return err
	}
	e.logger.InfoContext(ctx, "session reset", "session_id", sessionID)
	return nil
}

func (e *Engine) observe(t model.InsuranceType, outcome string, score float64) {
	if e.metrics == nil {
		return
	}
	e.metrics.ObserveAssessment(t, outcome, score)
}

func malformed(err error) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeMalformedProperties,
		Message: err.Error(),
	}
}

func storageFailure(err error) model.CalculationMessage {
	return model.CalculationMessage{
		Level:   model.LevelCritical,
		Code:    model.CodeStorageFailure,
		Message: err.Error(),
	}
}

func numbered(msgs ...model.CalculationMessage) []model.CalculationMessage {
	for i := range msgs {
		msgs[i].ID = i
	}
	return msgs
}
