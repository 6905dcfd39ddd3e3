package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

func TestChainDeal_EscalatesAtThresholds(t *testing.T) {
	h := newHarness(t)
	input := basicDeal(50, 60)
	input.ChainTiers = []domain.ChainTier{
		{ClaimThreshold: 20, DiscountPercent: 20},
		{ClaimThreshold: 35, DiscountPercent: 35},
		{ClaimThreshold: 50, DiscountPercent: 50},
	}
	dealID := h.createDeal(t, input)

	h.claimN(t, dealID, 1, 19)
	deal := h.deal(t, dealID)
	assert.Equal(t, 10.0, deal.DiscountPercent)
	assert.Equal(t, 0, deal.CurrentChainLevel)

	out, err := h.claim(dealID, customerID(20))
	require.NoError(t, err)
	assert.Equal(t, 20.0, *out.Deal.Content.DiscountPercent)
	assert.Equal(t, 1, out.Deal.ChainLevel)
	assert.Equal(t, 1, out.Claim.ClaimedAtLevel)
	assert.Equal(t, 20.0, out.Claim.ClaimedDiscountPercent)
	require.NotNil(t, out.Deal.NextTier)
	assert.Equal(t, 35, out.Deal.NextTier.ClaimThreshold)
	assert.Equal(t, 15, out.Deal.ClaimsToNextTier)

	h.claimN(t, dealID, 21, 34)
	assert.Equal(t, 20.0, h.deal(t, dealID).DiscountPercent)

	_, err = h.claim(dealID, customerID(35))
	require.NoError(t, err)
	deal = h.deal(t, dealID)
	assert.Equal(t, 35.0, deal.DiscountPercent)
	assert.Equal(t, 2, deal.CurrentChainLevel)

	assert.Equal(t, []int{1, 2}, h.notifier.tiers)
}

func TestEvaluateChainTiers_UnlocksEveryCrossedTier(t *testing.T) {
	deal := &domain.Deal{
		IsChainDeal:     true,
		DiscountPercent: 10,
		CurrentClaims:   36,
		ChainTiers: []domain.ChainTier{
			{ClaimThreshold: 20, DiscountPercent: 20},
			{ClaimThreshold: 35, DiscountPercent: 35},
			{ClaimThreshold: 50, DiscountPercent: 50},
		},
	}

	unlocked := evaluateChainTiers(deal)
	require.Len(t, unlocked, 2)
	assert.Equal(t, 1, unlocked[0].level)
	assert.Equal(t, 2, unlocked[1].level)
	assert.Equal(t, 2, deal.CurrentChainLevel)
	assert.Equal(t, 35.0, deal.DiscountPercent)

	assert.Empty(t, evaluateChainTiers(deal))
}

func TestEvaluateChainTiers_KeepsRescueBonus(t *testing.T) {
	deal := &domain.Deal{
		IsChainDeal:        true,
		DiscountPercent:    15,
		CurrentClaims:      5,
		RescueBonusAdded:   true,
		RescueBonusPercent: 5,
		ChainTiers:         []domain.ChainTier{{ClaimThreshold: 5, DiscountPercent: 20}},
	}

	evaluateChainTiers(deal)
	assert.Equal(t, 25.0, deal.DiscountPercent)
}

func TestEvaluateChainTiers_NeverLowersDiscount(t *testing.T) {
	deal := &domain.Deal{
		IsChainDeal:     true,
		DiscountPercent: 30,
		CurrentClaims:   5,
		ChainTiers:      []domain.ChainTier{{ClaimThreshold: 5, DiscountPercent: 20}},
	}

	unlocked := evaluateChainTiers(deal)
	assert.Len(t, unlocked, 1)
	assert.Equal(t, 30.0, deal.DiscountPercent)
}

func TestEvaluateChainTiers_PlainDeal(t *testing.T) {
	deal := &domain.Deal{DiscountPercent: 10, CurrentClaims: 100}
	assert.Nil(t, evaluateChainTiers(deal))
	assert.Equal(t, 10.0, deal.DiscountPercent)
}
