package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	dealdto "github.com/LavaJover/shvark-flashdeal-service/internal/usecase/dto/deal"
)

func TestClaimDeal_AssignsDensePositions(t *testing.T) {
	h := newHarness(t)
	dealID := h.createDeal(t, basicDeal(10, 30))

	for i := 1; i <= 5; i++ {
		out, err := h.claim(dealID, customerID(i))
		require.NoError(t, err)
		assert.Equal(t, i, out.Claim.Position)
		assert.Equal(t, i, out.Deal.CurrentClaims)
		assert.False(t, out.Activated)
		assert.Nil(t, out.Claim.CouponCode)
	}

	claims, err := h.store.GetClaims(context.Background(), dealID)
	require.NoError(t, err)
	assert.Len(t, claims, 5)
}

func TestClaimDeal_Rejections(t *testing.T) {
	h := newHarness(t)
	dealID := h.createDeal(t, basicDeal(10, 30))

	_, err := h.claim(dealID, "c1")
	require.NoError(t, err)

	t.Run("duplicate customer", func(t *testing.T) {
		_, err := h.claim(dealID, "c1")
		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
		assert.Equal(t, 1, h.deal(t, dealID).CurrentClaims)
	})

	t.Run("missing customer", func(t *testing.T) {
		_, err := h.uc.ClaimDeal(context.Background(), &dealdto.ClaimDealInput{DealID: dealID})
		assert.ErrorIs(t, err, domain.ErrInvalidClaim)
	})

	t.Run("unknown deal", func(t *testing.T) {
		_, err := h.claim("no-such-deal", "c2")
		assert.ErrorIs(t, err, domain.ErrDealNotFound)
	})

	t.Run("scheduled deal", func(t *testing.T) {
		input := basicDeal(10, 30)
		input.StartsAt = baseTime.Add(time.Hour)
		scheduled := h.createDeal(t, input)

		_, err := h.claim(scheduled, "c2")
		assert.ErrorIs(t, err, domain.ErrDealNotLive)
	})

	t.Run("deadline passed before sweep", func(t *testing.T) {
		h.clock.Set(baseTime.Add(30 * time.Minute))
		defer h.clock.Set(baseTime)

		_, err := h.claim(dealID, "c3")
		assert.ErrorIs(t, err, domain.ErrDealExpired)
		assert.Equal(t, 1, h.deal(t, dealID).CurrentClaims)
	})
}

func TestClaimDeal_LastSecondClaimActivates(t *testing.T) {
	h := newHarness(t)
	dealID := h.createDeal(t, basicDeal(30, 30))

	h.clock.Advance(time.Minute)
	h.claimN(t, dealID, 1, 29)

	h.clock.Set(baseTime.Add(30*time.Minute - time.Second))
	out, err := h.claim(dealID, customerID(30))
	require.NoError(t, err)

	assert.True(t, out.Activated)
	assert.Equal(t, 30, out.Claim.Position)
	require.NotNil(t, out.Claim.CouponCode)
	assert.Equal(t, domain.StatusActivated, out.Deal.Status)

	deal := h.deal(t, dealID)
	assert.Equal(t, domain.StatusActivated, deal.Status)
	require.NotNil(t, deal.ActivatedAt)
	assert.True(t, deal.RescueBonusAdded)
	assert.Equal(t, 15.0, deal.DiscountPercent)

	claims, err := h.store.GetClaims(context.Background(), dealID)
	require.NoError(t, err)
	require.Len(t, claims, 30)
	codes := make(map[string]bool)
	for _, c := range claims {
		require.True(t, c.HasCoupon(), "claim %d has no coupon", c.Position)
		codes[*c.CouponCode] = true
	}
	assert.Len(t, codes, 30)

	assert.Len(t, h.notifier.activations, 30)
	assert.Equal(t, 1, h.notifier.shopActivations)
}

func TestClaimDeal_ConcurrentFinalClaims(t *testing.T) {
	h := newHarness(t)
	dealID := h.createDeal(t, basicDeal(30, 30))
	h.claimN(t, dealID, 1, 28)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		outputs []*dealdto.ClaimOutput
	)
	for _, id := range []string{"c29", "c30"} {
		h.dir.AddCustomer(&domain.Customer{ID: id})
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			out, err := h.uc.ClaimDeal(context.Background(), &dealdto.ClaimDealInput{DealID: dealID, CustomerID: id})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			outputs = append(outputs, out)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	require.Len(t, outputs, 2)
	positions := map[int]bool{}
	activated := 0
	for _, out := range outputs {
		positions[out.Claim.Position] = true
		if out.Activated {
			activated++
			assert.Equal(t, 30, out.Claim.Position)
		}
	}
	assert.Equal(t, map[int]bool{29: true, 30: true}, positions)
	assert.Equal(t, 1, activated)

	deal := h.deal(t, dealID)
	assert.Equal(t, domain.StatusActivated, deal.Status)
	assert.Equal(t, 30, deal.CurrentClaims)

	claims, err := h.store.GetClaims(context.Background(), dealID)
	require.NoError(t, err)
	codes := make(map[string]bool)
	for _, c := range claims {
		require.True(t, c.HasCoupon())
		codes[*c.CouponCode] = true
	}
	assert.Len(t, codes, 30)
	assert.Len(t, h.notifier.activations, 30)
	assert.Equal(t, 1, h.notifier.shopActivations)
}

func TestClaimDeal_Milestones(t *testing.T) {
	h := newHarness(t)
	dealID := h.createDeal(t, basicDeal(8, 30))

	h.claimN(t, dealID, 1, 7)
	assert.Equal(t, []int{25, 50, 75}, h.notifier.milestones)

	deal := h.deal(t, dealID)
	assert.ElementsMatch(t, []int{25, 50, 75}, deal.MilestonesNotified)

	// 8/8 crosses 90 and activates
	_, err := h.claim(dealID, customerID(8))
	require.NoError(t, err)
	assert.Equal(t, []int{25, 50, 75, 90}, h.notifier.milestones)
}

func TestMarkMilestones_JumpsAnnounceEveryThreshold(t *testing.T) {
	deal := &domain.Deal{TargetClaims: 3, MilestonesNotified: []int{}}

	deal.CurrentClaims = 1
	assert.Equal(t, []int{25}, markMilestones(deal))

	deal.CurrentClaims = 2
	assert.Equal(t, []int{50}, markMilestones(deal))

	deal.CurrentClaims = 3
	assert.Equal(t, []int{75, 90}, markMilestones(deal))

	assert.Empty(t, markMilestones(deal))
	assert.Equal(t, []int{25, 50, 75, 90}, deal.MilestonesNotified)
}

func TestClaimDeal_Referral(t *testing.T) {
	h := newHarness(t)
	dealID := h.createDeal(t, basicDeal(10, 30))

	ref := "c1"
	out, err := h.uc.ClaimDeal(context.Background(), &dealdto.ClaimDealInput{DealID: dealID, CustomerID: "c2", ReferredBy: &ref})
	require.NoError(t, err)
	require.NotNil(t, out.Claim.ReferredBy)
	assert.Equal(t, "c1", *out.Claim.ReferredBy)
	assert.Equal(t, domain.SourceReferral, out.Claim.ClaimSource)

	self := "c3"
	out, err = h.uc.ClaimDeal(context.Background(), &dealdto.ClaimDealInput{DealID: dealID, CustomerID: "c3", ReferredBy: &self})
	require.NoError(t, err)
	assert.Nil(t, out.Claim.ReferredBy)
	assert.Equal(t, domain.SourceDirect, out.Claim.ClaimSource)
}

func TestClaimDeal_SurpriseRevealedToClaimant(t *testing.T) {
	h := newHarness(t)
	input := basicDeal(10, 30)
	input.Title = "Mystery box"
	input.DiscountPercent = 0
	input.Surprise = &dealdto.SurpriseParams{
		HiddenTitle:    "Chef's tasting menu",
		HiddenDiscount: 40,
		HiddenProduct:  "tasting-menu",
		MysteryImage:   "https://cdn.example.com/mystery.png",
	}
	dealID := h.createDeal(t, input)

	status, err := h.uc.GetDealStatus(context.Background(), dealID)
	require.NoError(t, err)
	assert.False(t, status.Content.Revealed)
	assert.Equal(t, "Mystery box", status.Content.Title)
	assert.Nil(t, status.Content.DiscountPercent)

	out, err := h.claim(dealID, "c1")
	require.NoError(t, err)
	assert.True(t, out.Deal.Content.Revealed)
	assert.Equal(t, "Chef's tasting menu", out.Deal.Content.Title)
	require.NotNil(t, out.Deal.Content.DiscountPercent)
	assert.Equal(t, 40.0, *out.Deal.Content.DiscountPercent)
}
