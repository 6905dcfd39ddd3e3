package usecase

import (
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

// applyRescue runs the two one-shot interventions for a deal that is close to
// its target with little time left. Each is gated by its own flag, so both fire
// together on the first qualifying claim and never again.
func (uc *DefaultDealUsecase) applyRescue(deal *domain.Deal, now time.Time) []domain.RescueAction {
	if deal.RescueExtended && deal.RescueBonusAdded {
		return nil
	}
	if deal.Progress() < uc.Settings.RescueTriggerRatio {
		return nil
	}
	if deal.ExpiresAt.Sub(now) >= uc.Settings.RescueWindow {
		return nil
	}

	var actions []domain.RescueAction
	if !deal.RescueExtended {
		if deal.RescueExtensionMinutes <= 0 {
			deal.RescueExtensionMinutes = uc.Settings.DefaultExtensionMinutes
		}
		deal.ExpiresAt = deal.ExpiresAt.Add(time.Duration(deal.RescueExtensionMinutes) * time.Minute)
		deal.RescueExtended = true
		actions = append(actions, domain.RescueTimeExtension)
	}
	if !deal.RescueBonusAdded {
		if deal.RescueBonusPercent <= 0 {
			deal.RescueBonusPercent = uc.Settings.DefaultBonusPercent
		}
		deal.OriginalDiscountPercent = deal.DiscountPercent
		deal.DiscountPercent = capDiscount(deal.DiscountPercent + deal.RescueBonusPercent)
		deal.RescueBonusAdded = true
		actions = append(actions, domain.RescueBonusDiscount)
	}
	return actions
}
