package grpcapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/contract"
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/coupon"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/notifier"
	"github.com/LavaJover/shvark-flashdeal-service/internal/usecase/analytics"
	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
)

func newTestClient(t *testing.T) *FlashDealServiceClient {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewDealStore(time.Second)
	dir := memory.NewDirectory()
	dir.AddShop(&domain.Shop{ID: "shop-1", Name: "Corner Bakery"})

	coupons, err := coupon.NewGenerator(store, 8, 5)
	require.NoError(t, err)
	report, err := analytics.NewGenerator(time.UTC, analytics.DefaultRules)
	require.NoError(t, err)
	uc := dealusecase.NewDefaultDealUsecase(store, coupons, notifier.New(notifier.NewLogSink(logger)), dir, dir, report, dealusecase.DefaultSettings())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryInterceptor(logger)))
	RegisterFlashDealServiceServer(srv, NewDealHandler(uc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewFlashDealServiceClient(conn)
}

func TestService_DealLifecycle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.CreateDeal(ctx, &contract.CreateDealRequest{
		ShopID:           "shop-1",
		Title:            "Two-for-one espresso",
		DiscountPercent:  20,
		TargetClaims:     2,
		TimeLimitMinutes: 15,
		ChainTiers:       []contract.ChainTier{{ClaimThreshold: 3, DiscountPercent: 30}},
	})
	require.NoError(t, err)
	dealID := created.Deal.ID
	assert.Equal(t, "live", created.Deal.Status)
	assert.True(t, created.Deal.IsChainDeal)

	first, err := client.ClaimDeal(ctx, &contract.ClaimDealRequest{DealID: dealID, CustomerID: "c1", Source: "broadcast"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Claim.Position)
	assert.Equal(t, "broadcast", first.Claim.ClaimSource)

	_, err = client.ClaimDeal(ctx, &contract.ClaimDealRequest{DealID: dealID, CustomerID: "c1"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	second, err := client.ClaimDeal(ctx, &contract.ClaimDealRequest{DealID: dealID, CustomerID: "c2", ReferredBy: "c1"})
	require.NoError(t, err)
	assert.True(t, second.Activated)
	assert.Equal(t, "referral", second.Claim.ClaimSource)
	assert.Regexp(t, `^FD-[A-Z2-9]{8}$`, second.Claim.CouponCode)

	got, err := client.GetDealStatus(ctx, &contract.GetDealStatusRequest{DealID: dealID})
	require.NoError(t, err)
	assert.Equal(t, "activated", got.Deal.Status)
	assert.NotNil(t, got.Deal.ActivatedAt)

	_, err = client.CancelDeal(ctx, &contract.CancelDealRequest{DealID: dealID})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	report, err := client.RunExpirySweep(ctx, &contract.RunExpirySweepRequest{})
	require.NoError(t, err)
	assert.Zero(t, report.Expired)
}

func TestService_ErrorCodes(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.GetDealStatus(ctx, &contract.GetDealStatusRequest{DealID: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.CreateDeal(ctx, &contract.CreateDealRequest{ShopID: "shop-1", Title: "x", TargetClaims: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ClaimDeal(ctx, &contract.ClaimDealRequest{DealID: "missing"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{domain.ErrDealNotFound, codes.NotFound},
		{fmt.Errorf("wrapped: %w", domain.ErrAlreadyClaimed), codes.AlreadyExists},
		{domain.ErrDealNotLive, codes.FailedPrecondition},
		{domain.ErrDealExpired, codes.FailedPrecondition},
		{domain.ErrInvalidTransition, codes.FailedPrecondition},
		{domain.ErrInvalidDeal, codes.InvalidArgument},
		{domain.ErrConcurrencyConflict, codes.Aborted},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{context.Canceled, codes.Canceled},
		{errors.New("disk on fire"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, status.Code(toStatus(tt.err)))
		})
	}

	assert.Equal(t, "internal error", status.Convert(toStatus(errors.New("secret"))).Message())
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	assert.Equal(t, CodecName, c.Name())

	raw, err := c.Marshal(&contract.ClaimDealRequest{DealID: "d1", CustomerID: "c1"})
	require.NoError(t, err)

	var out contract.ClaimDealRequest
	require.NoError(t, c.Unmarshal(raw, &out))
	assert.Equal(t, "d1", out.DealID)
	assert.Equal(t, "c1", out.CustomerID)
}
