package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/contract"
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/coupon"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/notifier"
	"github.com/LavaJover/shvark-flashdeal-service/internal/usecase/analytics"
	dealusecase "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/deal"
)

func newTestServer(t *testing.T) *httptest.Server {
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
	srv := httptest.NewServer(NewRouter(uc, prometheus.NewRegistry(), logger))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var buf io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, srv.URL+path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createDeal(t *testing.T, srv *httptest.Server, target int) string {
	t.Helper()
	resp := doJSON(t, srv, http.MethodPost, "/deals/", contract.CreateDealRequest{
		ShopID:           "shop-1",
		Title:            "Half-price sourdough",
		DiscountPercent:  10,
		TargetClaims:     target,
		TimeLimitMinutes: 30,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode[contract.DealResponse](t, resp)
	require.NotNil(t, body.Deal)
	assert.Equal(t, "live", body.Deal.Status)
	return body.Deal.ID
}

func TestRouter_ClaimUntilActivation(t *testing.T) {
	srv := newTestServer(t)
	dealID := createDeal(t, srv, 2)

	resp := doJSON(t, srv, http.MethodPost, "/deals/"+dealID+"/claims", contract.ClaimDealRequest{CustomerID: "c1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decode[contract.ClaimDealResponse](t, resp)
	assert.Equal(t, 1, first.Claim.Position)
	assert.False(t, first.Activated)
	assert.Empty(t, first.Claim.CouponCode)

	resp = doJSON(t, srv, http.MethodPost, "/deals/"+dealID+"/claims", contract.ClaimDealRequest{CustomerID: "c1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "already_claimed", decode[contract.ErrorResponse](t, resp).Code)

	resp = doJSON(t, srv, http.MethodPost, "/deals/"+dealID+"/claims", contract.ClaimDealRequest{CustomerID: "c2"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	second := decode[contract.ClaimDealResponse](t, resp)
	assert.True(t, second.Activated)
	assert.Equal(t, "activated", second.Deal.Status)
	assert.NotEmpty(t, second.Claim.CouponCode)

	resp = doJSON(t, srv, http.MethodGet, "/deals/"+dealID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	status := decode[contract.DealResponse](t, resp)
	assert.Equal(t, 2, status.Deal.CurrentClaims)
	assert.Equal(t, float64(100), status.Deal.ProgressPercent)

	resp = doJSON(t, srv, http.MethodPost, "/deals/"+dealID+"/claims", contract.ClaimDealRequest{CustomerID: "c3"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "not_live", decode[contract.ErrorResponse](t, resp).Code)
}

func TestRouter_Errors(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/deals/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decode[contract.ErrorResponse](t, resp).Code)

	resp = doJSON(t, srv, http.MethodPost, "/deals/", contract.CreateDealRequest{ShopID: "shop-1", Title: "x", TargetClaims: 0, TimeLimitMinutes: 10})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_request", decode[contract.ErrorResponse](t, resp).Code)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/deals/", strings.NewReader("{not json"))
	require.NoError(t, err)
	raw, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)

	dealID := createDeal(t, srv, 5)
	resp = doJSON(t, srv, http.MethodPost, "/deals/"+dealID+"/claims", contract.ClaimDealRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_CancelThenSweep(t *testing.T) {
	srv := newTestServer(t)
	dealID := createDeal(t, srv, 5)

	resp := doJSON(t, srv, http.MethodPost, "/deals/"+dealID+"/cancel", contract.CancelDealRequest{Reason: "sold out"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodGet, "/deals/"+dealID, nil)
	status := decode[contract.DealResponse](t, resp)
	assert.Equal(t, "cancelled", status.Deal.Status)
	assert.Equal(t, "sold out", status.Deal.CancelReason)

	resp = doJSON(t, srv, http.MethodPost, "/deals/"+dealID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid_transition", decode[contract.ErrorResponse](t, resp).Code)

	resp = doJSON(t, srv, http.MethodPost, "/admin/sweep", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[contract.RunExpirySweepResponse](t, resp)
	assert.Zero(t, report.Selected)
	assert.False(t, report.LockHeld)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	resp = doJSON(t, srv, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
