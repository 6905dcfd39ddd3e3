package usecase

import "github.com/LavaJover/shvark-flashdeal-service/internal/domain"

// evaluateChainTiers escalates the deal through every tier its claim count has
// crossed, lowest first, and returns the tiers unlocked by this call. A rescue
// bonus already granted stays on top of the tier discount.
func evaluateChainTiers(deal *domain.Deal) []tierUnlock {
	if !deal.IsChainDeal {
		return nil
	}

	var unlocked []tierUnlock
	for level := deal.CurrentChainLevel + 1; level <= len(deal.ChainTiers); level++ {
		tier, _ := deal.Tier(level)
		if tier.ClaimThreshold > deal.CurrentClaims {
			break
		}
		deal.CurrentChainLevel = level

		discount := tier.DiscountPercent
		if deal.RescueBonusAdded {
			discount = capDiscount(discount + deal.RescueBonusPercent)
		}
		// discount never goes down
		if discount > deal.DiscountPercent {
			deal.DiscountPercent = discount
		}
		unlocked = append(unlocked, tierUnlock{level: level, tier: tier})
	}
	return unlocked
}

// nextTier returns the first tier above the deal's current level.
func nextTier(deal *domain.Deal) (domain.ChainTier, bool) {
	if !deal.IsChainDeal {
		return domain.ChainTier{}, false
	}
	return deal.Tier(deal.CurrentChainLevel + 1)
}

func capDiscount(percent float64) float64 {
	if percent > 100 {
		return 100
	}
	return percent
}
