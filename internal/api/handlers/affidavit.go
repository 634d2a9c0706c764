package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bakertreasury/expense-reconciler/internal/affidavit"
	"github.com/bakertreasury/expense-reconciler/internal/api/dto"
)

// AffidavitHandler handles POST /api/affidavit.
type AffidavitHandler struct {
	Base
	logger *slog.Logger
}

// NewAffidavitHandler creates a new affidavit handler.
func NewAffidavitHandler(logger *slog.Logger) *AffidavitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AffidavitHandler{logger: logger}
}

// Generate renders a missing-receipt affidavit PDF and streams it back
// as a download.
func (h *AffidavitHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.AffidavitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("invalid JSON body"))
		return
	}

	if req.Vendor == "" {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("vendor is required"))
		return
	}
	if req.CardholderName == "" {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("cardholder_name is required"))
		return
	}
	if req.Price < 0 {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError("price must be non-negative"))
		return
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.ValidationError(fmt.Sprintf("date must be YYYY-MM-DD, got %q", req.Date)))
		return
	}

	buf, err := affidavit.Generate(req.Vendor, decimal.NewFromFloat(req.Price), date, req.CardholderName)
	if err != nil {
		h.logger.Error("affidavit generation failed", "error", err)
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", affidavit.Filename(req.Vendor, date)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
