package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

func seedDeal(t *testing.T, s *DealStore, id string) {
	t.Helper()
	require.NoError(t, s.CreateDeal(context.Background(), &domain.Deal{
		ID:           id,
		ShopID:       "shop-1",
		Status:       domain.StatusLive,
		TargetClaims: 10,
		ExpiresAt:    time.Now().Add(time.Hour),
	}))
}

func TestDealStore_RollsBackOnError(t *testing.T) {
	s := NewDealStore(time.Second)
	seedDeal(t, s, "d1")

	boom := errors.New("boom")
	err := s.WithDealLock(context.Background(), "d1", func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		deal.CurrentClaims = 1
		require.NoError(t, tx.CreateClaim(ctx, &domain.Claim{ID: "cl1", DealID: "d1", CustomerID: "c1", Position: 1}))
		require.NoError(t, tx.SaveDeal(ctx, deal))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	deal, err := s.GetDeal(context.Background(), "d1")
	require.NoError(t, err)
	assert.Zero(t, deal.CurrentClaims)

	claims, err := s.GetClaims(context.Background(), "d1")
	require.NoError(t, err)
	assert.Empty(t, claims)
}

func TestDealStore_DoesNotCommitAfterCancel(t *testing.T) {
	s := NewDealStore(time.Second)
	seedDeal(t, s, "d1")

	ctx, cancel := context.WithCancel(context.Background())
	err := s.WithDealLock(ctx, "d1", func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		deal.Status = domain.StatusExpired
		require.NoError(t, tx.SaveDeal(ctx, deal))
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)

	deal, err := s.GetDeal(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLive, deal.Status)
}

func TestDealStore_CommitsClaimsAndCoupons(t *testing.T) {
	s := NewDealStore(time.Second)
	seedDeal(t, s, "d1")
	ctx := context.Background()

	err := s.WithDealLock(ctx, "d1", func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
		require.NoError(t, tx.CreateClaim(ctx, &domain.Claim{ID: "cl1", DealID: "d1", CustomerID: "c1", Position: 1}))
		assert.ErrorIs(t, tx.CreateClaim(ctx, &domain.Claim{ID: "cl2", DealID: "d1", CustomerID: "c1", Position: 2}), domain.ErrAlreadyClaimed)

		claims, err := tx.ListClaims(ctx, "d1")
		require.NoError(t, err)
		require.Len(t, claims, 1)
		require.NoError(t, tx.SetCouponCode(ctx, "cl1", "FD-AAAA"))

		deal.CurrentClaims = 1
		return tx.SaveDeal(ctx, deal)
	})
	require.NoError(t, err)

	exists, err := s.CouponCodeExists(ctx, "FD-AAAA")
	require.NoError(t, err)
	assert.True(t, exists)

	claims, err := s.GetClaims(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, claims, 1)
	require.NotNil(t, claims[0].CouponCode)
	assert.Equal(t, "FD-AAAA", *claims[0].CouponCode)
}

func TestDealStore_RejectsDuplicateCouponAcrossDeals(t *testing.T) {
	s := NewDealStore(time.Second)
	seedDeal(t, s, "d1")
	seedDeal(t, s, "d2")
	ctx := context.Background()

	issue := func(dealID, claimID string) error {
		return s.WithDealLock(ctx, dealID, func(ctx context.Context, tx domain.DealTx, deal *domain.Deal) error {
			if err := tx.CreateClaim(ctx, &domain.Claim{ID: claimID, DealID: dealID, CustomerID: "c1", Position: 1}); err != nil {
				return err
			}
			return tx.SetCouponCode(ctx, claimID, "FD-SAME")
		})
	}
	require.NoError(t, issue("d1", "cl1"))
	assert.ErrorIs(t, issue("d2", "cl2"), domain.ErrCouponCollision)

	claims, err := s.GetClaims(ctx, "d2")
	require.NoError(t, err)
	assert.Empty(t, claims)
}

func TestDealStore_LockTimeout(t *testing.T) {
	s := NewDealStore(20 * time.Millisecond)
	seedDeal(t, s, "d1")
	ctx := context.Background()

	held := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = s.WithDealLock(ctx, "d1", func(context.Context, domain.DealTx, *domain.Deal) error {
			close(held)
			<-done
			return nil
		})
	}()
	<-held

	err := s.WithDealLock(ctx, "d1", func(context.Context, domain.DealTx, *domain.Deal) error { return nil })
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
	close(done)
}

func TestDealStore_ReturnsCopies(t *testing.T) {
	s := NewDealStore(time.Second)
	seedDeal(t, s, "d1")

	deal, err := s.GetDeal(context.Background(), "d1")
	require.NoError(t, err)
	deal.CurrentClaims = 99

	again, err := s.GetDeal(context.Background(), "d1")
	require.NoError(t, err)
	assert.Zero(t, again.CurrentClaims)

	_, err = s.GetDeal(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDealNotFound)
}

func TestDealStore_Queries(t *testing.T) {
	s := NewDealStore(time.Second)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.CreateDeal(ctx, &domain.Deal{ID: "due", Status: domain.StatusScheduled, StartsAt: now.Add(-time.Second)}))
	require.NoError(t, s.CreateDeal(ctx, &domain.Deal{ID: "later", Status: domain.StatusScheduled, StartsAt: now.Add(time.Hour)}))
	require.NoError(t, s.CreateDeal(ctx, &domain.Deal{ID: "over", Status: domain.StatusLive, ExpiresAt: now}))
	require.NoError(t, s.CreateDeal(ctx, &domain.Deal{ID: "running", Status: domain.StatusLive, ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, s.CreateDeal(ctx, &domain.Deal{ID: "done", Status: domain.StatusExpired, ExpiresAt: now.Add(-time.Hour)}))

	due, err := s.FindDueScheduledDeals(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].ID)

	expired, err := s.FindExpiredLiveDeals(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "over", expired[0].ID)
}
