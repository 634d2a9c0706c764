package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakertreasury/expense-reconciler/internal/adapters/ledger"
	"github.com/bakertreasury/expense-reconciler/internal/api/dto"
	"github.com/bakertreasury/expense-reconciler/internal/application/service"
)

// ReconcileHandler handles POST /api/reconcile.
type ReconcileHandler struct {
	Base
	service *service.ReconcileService
	logger  *slog.Logger
}

// NewReconcileHandler creates a new reconcile handler.
func NewReconcileHandler(svc *service.ReconcileService, logger *slog.Logger) *ReconcileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileHandler{service: svc, logger: logger}
}

// Reconcile validates the request, runs the reconciliation, and writes
// the partition. Ledger fetch failures map to 502; everything else the
// service can produce maps to 500.
func (h *ReconcileHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req dto.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid JSON body"))
		return
	}

	params, apiErr := buildParams(req)
	if apiErr != nil {
		h.WriteError(w, http.StatusBadRequest, *apiErr)
		return
	}

	result, err := h.service.Reconcile(r.Context(), params)
	if err != nil {
		if errors.Is(err, ledger.ErrFetch) {
			h.logger.Warn("spreadsheet unreachable", "error", err)
			h.WriteError(w, http.StatusBadGateway, dto.UpstreamError("failed to access the purchase spreadsheet"))
			return
		}
		h.logger.Error("reconciliation failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.NewReconcileResponse(result))
}

// buildParams validates a reconcile request and converts it to service
// parameters. Threshold overrides are checked here because the engine
// treats out-of-range values as a caller contract violation.
func buildParams(req dto.ReconcileRequest) (service.ReconcileParams, *dto.APIError) {
	fail := func(err dto.APIError) (service.ReconcileParams, *dto.APIError) {
		return service.ReconcileParams{}, &err
	}

	if req.CardholderName == "" {
		return fail(dto.ValidationError("cardholder_name is required"))
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return fail(dto.ValidationError(fmt.Sprintf("start_date must be YYYY-MM-DD, got %q", req.StartDate)))
	}

	params := service.ReconcileParams{
		Cardholder:   req.CardholderName,
		StartDate:    startDate,
		ExpectedText: req.ExpectedExpenses,
	}

	if req.PriceTolerance != nil {
		if *req.PriceTolerance < 0 {
			return fail(dto.ValidationError("price_tolerance must be non-negative"))
		}
		tolerance := decimal.NewFromFloat(*req.PriceTolerance)
		params.PriceTolerance = &tolerance
	}
	if req.SimilarityThreshold != nil {
		if *req.SimilarityThreshold < 0 || *req.SimilarityThreshold > 1 {
			return fail(dto.ValidationError("similarity_threshold must be in [0, 1]"))
		}
		params.SimilarityThreshold = req.SimilarityThreshold
	}

	return params, nil
}
