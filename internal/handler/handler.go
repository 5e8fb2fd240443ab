package handler

import (
	"bytes"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"risk-engine/internal/engine"
	"risk-engine/internal/metrics"
	"risk-engine/internal/model"
	"risk-engine/internal/portfolio"
	"risk-engine/internal/scenarios"
)

const contentTypeJSON = "application/json"

type Handler struct {
	engine  *engine.Engine
	logger  *slog.Logger
	metrics fasthttp.RequestHandler
}

func New(e *engine.Engine, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		engine:  e,
		logger:  logger,
		metrics: fasthttpadaptor.NewFastHTTPHandler(m.Handler()),
	}
}

// Route dispatches a request by path and method.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/assessments" && method == fasthttp.MethodPost:
		h.handleAssessments(ctx)
	case path == "/fraud" && method == fasthttp.MethodPost:
		h.handleFraud(ctx)
	case path == "/fraud" && method == fasthttp.MethodGet:
		h.handleLatestClaim(ctx)
	case path == "/portfolio" && method == fasthttp.MethodGet:
		h.handlePortfolio(ctx)
	case path == "/portfolio" && method == fasthttp.MethodDelete:
		h.handleReset(ctx)
	case path == "/portfolio/export" && method == fasthttp.MethodGet:
		h.handleExport(ctx)
	case path == "/scenarios" && method == fasthttp.MethodGet:
		h.handleScenarios(ctx)
	case path == "/healthz" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == "/metrics" && method == fasthttp.MethodGet:
		h.metrics(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) handleAssessments(ctx *fasthttp.RequestCtx) {
	var req model.AssessmentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Assessments) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one assessment is required")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.engine.Process(ctx, &req))
}

func (h *Handler) handleFraud(ctx *fasthttp.RequestCtx) {
	var req model.FraudRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, h.engine.Fraud(ctx, &req))
}

func (h *Handler) handleLatestClaim(ctx *fasthttp.RequestCtx) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	review, err := h.engine.LatestClaim(ctx, sessionID)
	if err != nil {
		h.internalError(ctx, "load latest claim", err)
		return
	}
	if review == nil {
		writeError(ctx, fasthttp.StatusNotFound, "No claim reviewed in this session")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, review)
}

func (h *Handler) handlePortfolio(ctx *fasthttp.RequestCtx) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	snap, err := h.engine.Portfolio(ctx, sessionID)
	if err != nil {
		h.internalError(ctx, "summarize portfolio", err)
		return
	}
	review, err := h.engine.LatestClaim(ctx, sessionID)
	if err != nil {
		h.internalError(ctx, "load latest claim", err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, model.PortfolioResponse{
		SessionID:   sessionID,
		Portfolio:   snap,
		LatestClaim: review,
	})
}

func (h *Handler) handleReset(ctx *fasthttp.RequestCtx) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	if err := h.engine.Reset(ctx, sessionID); err != nil {
		h.internalError(ctx, "reset session", err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) handleExport(ctx *fasthttp.RequestCtx) {
	sessionID, ok := requireSession(ctx)
	if !ok {
		return
	}

	snap, err := h.engine.Portfolio(ctx, sessionID)
	if err != nil {
		h.internalError(ctx, "summarize portfolio", err)
		return
	}

	var buf bytes.Buffer
	if err := portfolio.WriteCSV(&buf, snap); err != nil {
		h.internalError(ctx, "export portfolio", err)
		return
	}

	ctx.SetContentType("text/csv; charset=utf-8")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="portfolio.csv"`)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(buf.Bytes())
}

type scenarioList struct {
	Assessments []scenarios.Scenario      `json:"assessments"`
	Claims      []scenarios.ClaimScenario `json:"claims"`
}

func (h *Handler) handleScenarios(ctx *fasthttp.RequestCtx) {
	var typ model.InsuranceType
	if raw := ctx.QueryArgs().Peek("insurance_type"); len(raw) > 0 {
		parsed, err := model.ParseInsuranceType(string(raw))
		if err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		typ = parsed
	}

	list := scenarioList{Assessments: scenarios.Assessments(typ)}
	if typ == "" {
		list.Claims = scenarios.Claims()
	}
	writeJSON(ctx, fasthttp.StatusOK, list)
}

func (h *Handler) internalError(ctx *fasthttp.RequestCtx, op string, err error) {
	h.logger.ErrorContext(ctx, op+" failed", "error", err)
	writeError(ctx, fasthttp.StatusInternalServerError, "Internal error")
}

func requireSession(ctx *fasthttp.RequestCtx) (string, bool) {
	sessionID := string(ctx.QueryArgs().Peek("session_id"))
	if sessionID == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "session_id is required")
		return "", false
	}
	return sessionID, true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
