package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/contract"
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

type DealHandler struct {
	uc dealusecase.DealUsecase
}

func NewDealHandler(uc dealusecase.DealUsecase) *DealHandler {
	return &DealHandler{uc: uc}
}

func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	out, err := h.uc.CreateDeal(r.Context(), contract.ToCreateDealInput(&req))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.DealResponse{Deal: contract.FromSnapshot(&out.Deal)})
}

func (h *DealHandler) GetDealStatus(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.uc.GetDealStatus(r.Context(), chi.URLParam(r, "dealID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.DealResponse{Deal: contract.FromSnapshot(snapshot)})
}

func (h *DealHandler) ClaimDeal(w http.ResponseWriter, r *http.Request) {
	var req contract.ClaimDealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	req.DealID = chi.URLParam(r, "dealID")

	out, err := h.uc.ClaimDeal(r.Context(), contract.ToClaimDealInput(&req))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.FromClaimOutput(out))
}

func (h *DealHandler) CancelDeal(w http.ResponseWriter, r *http.Request) {
	var req contract.CancelDealRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
			return
		}
	}

	input := &dealdto.CancelDealInput{DealID: chi.URLParam(r, "dealID"), Reason: req.Reason}
	if err := h.uc.CancelDeal(r.Context(), input); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.CancelDealResponse{Message: "deal cancelled"})
}

func (h *DealHandler) RunExpirySweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.uc.RunExpirySweep(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.FromSweepReport(report))
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDealNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrAlreadyClaimed):
		writeError(w, http.StatusConflict, "already_claimed", err.Error())
	case errors.Is(err, domain.ErrDealNotLive):
		writeError(w, http.StatusConflict, "not_live", err.Error())
	case errors.Is(err, domain.ErrDealExpired):
		writeError(w, http.StatusGone, "expired", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err.Error())
	case domain.IsValidation(err):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, domain.ErrConcurrencyConflict):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, "conflict", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "timeout", err.Error())
	default:
		slog.Error("flashdeal request failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, contract.ErrorResponse{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
