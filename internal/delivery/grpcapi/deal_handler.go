package grpcapi

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/contract"
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

type DealHandler struct {
	uc dealusecase.DealUsecase
}

func NewDealHandler(uc dealusecase.DealUsecase) *DealHandler {
	return &DealHandler{
		uc: uc,
	}
}

func (h *DealHandler) CreateDeal(ctx context.Context, r *contract.CreateDealRequest) (*contract.DealResponse, error) {
	out, err := h.uc.CreateDeal(ctx, contract.ToCreateDealInput(r))
	if err != nil {
		return nil, toStatus(err)
	}
	return &contract.DealResponse{Deal: contract.FromSnapshot(&out.Deal)}, nil
}

func (h *DealHandler) ClaimDeal(ctx context.Context, r *contract.ClaimDealRequest) (*contract.ClaimDealResponse, error) {
	out, err := h.uc.ClaimDeal(ctx, contract.ToClaimDealInput(r))
	if err != nil {
		return nil, toStatus(err)
	}
	return contract.FromClaimOutput(out), nil
}

func (h *DealHandler) GetDealStatus(ctx context.Context, r *contract.GetDealStatusRequest) (*contract.DealResponse, error) {
	snapshot, err := h.uc.GetDealStatus(ctx, r.DealID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &contract.DealResponse{Deal: contract.FromSnapshot(snapshot)}, nil
}

func (h *DealHandler) CancelDeal(ctx context.Context, r *contract.CancelDealRequest) (*contract.CancelDealResponse, error) {
	if err := h.uc.CancelDeal(ctx, &dealdto.CancelDealInput{DealID: r.DealID, Reason: r.Reason}); err != nil {
		return nil, toStatus(err)
	}
	return &contract.CancelDealResponse{Message: "deal cancelled"}, nil
}

func (h *DealHandler) RunExpirySweep(ctx context.Context, _ *contract.RunExpirySweepRequest) (*contract.RunExpirySweepResponse, error) {
	report, err := h.uc.RunExpirySweep(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return contract.FromSweepReport(report), nil
}

func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, domain.ErrDealNotFound):
		code = codes.NotFound
	case errors.Is(err, domain.ErrAlreadyClaimed):
		code = codes.AlreadyExists
	case errors.Is(err, domain.ErrDealNotLive),
		errors.Is(err, domain.ErrDealExpired),
		errors.Is(err, domain.ErrInvalidTransition):
		code = codes.FailedPrecondition
	case domain.IsValidation(err):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrConcurrencyConflict):
		code = codes.Aborted
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		slog.Error("flashdeal rpc failed", "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}
