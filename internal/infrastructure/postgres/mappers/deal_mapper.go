package mappers

import (
	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"github.com/LavaJover/shvark-flashdeal-service/internal/infrastructure/postgres/models"
)

func ToDomainDeal(model *models.DealModel) *domain.Deal {
	return &domain.Deal{
		ID:                      model.ID,
		ShopID:                  model.ShopID,
		Title:                   model.Title,
		Description:             model.Description,
		ImageURL:                model.ImageURL,
		Category:                model.Category,
		DiscountPercent:         model.DiscountPercent,
		MaxDiscountValue:        model.MaxDiscountValue,
		OriginalDiscountPercent: model.OriginalDiscountPercent,
		TargetClaims:            model.TargetClaims,
		TimeLimitMinutes:        model.TimeLimitMinutes,
		StartsAt:                model.StartsAt,
		ExpiresAt:               model.ExpiresAt,
		CouponValidUntil:        model.CouponValidUntil,
		CurrentClaims:           model.CurrentClaims,
		Status:                  model.Status,
		NotifiedCustomersCount:  model.NotifiedCustomersCount,
		MilestonesNotified:      model.MilestonesNotified,
		IsChainDeal:             model.IsChainDeal,
		ChainTiers:              model.ChainTiers,
		CurrentChainLevel:       model.CurrentChainLevel,
		IsSurpriseDeal:          model.IsSurpriseDeal,
		HiddenTitle:             model.HiddenTitle,
		HiddenDiscount:          model.HiddenDiscount,
		HiddenProduct:           model.HiddenProduct,
		MysteryImage:            model.MysteryImage,
		RescueExtended:          model.RescueExtended,
		RescueExtensionMinutes:  model.RescueExtensionMinutes,
		RescueBonusAdded:        model.RescueBonusAdded,
		RescueBonusPercent:      model.RescueBonusPercent,
		ActivatedAt:             model.ActivatedAt,
		ExpiredAt:               model.ExpiredAt,
		CancelledAt:             model.CancelledAt,
		CancelReason:            model.CancelReason,
		CreatedAt:               model.CreatedAt,
		UpdatedAt:               model.UpdatedAt,
	}
}

func ToGORMDeal(deal *domain.Deal) *models.DealModel {
	return &models.DealModel{
		ID:                      deal.ID,
		ShopID:                  deal.ShopID,
		Title:                   deal.Title,
		Description:             deal.Description,
		ImageURL:                deal.ImageURL,
		Category:                deal.Category,
		DiscountPercent:         deal.DiscountPercent,
		MaxDiscountValue:        deal.MaxDiscountValue,
		OriginalDiscountPercent: deal.OriginalDiscountPercent,
		TargetClaims:            deal.TargetClaims,
		TimeLimitMinutes:        deal.TimeLimitMinutes,
		StartsAt:                deal.StartsAt,
		ExpiresAt:               deal.ExpiresAt,
		CouponValidUntil:        deal.CouponValidUntil,
		CurrentClaims:           deal.CurrentClaims,
		Status:                  deal.Status,
		NotifiedCustomersCount:  deal.NotifiedCustomersCount,
		MilestonesNotified:      deal.MilestonesNotified,
		IsChainDeal:             deal.IsChainDeal,
		ChainTiers:              deal.ChainTiers,
		CurrentChainLevel:       deal.CurrentChainLevel,
		IsSurpriseDeal:          deal.IsSurpriseDeal,
		HiddenTitle:             deal.HiddenTitle,
		HiddenDiscount:          deal.HiddenDiscount,
		HiddenProduct:           deal.HiddenProduct,
		MysteryImage:            deal.MysteryImage,
		RescueExtended:          deal.RescueExtended,
		RescueExtensionMinutes:  deal.RescueExtensionMinutes,
		RescueBonusAdded:        deal.RescueBonusAdded,
		RescueBonusPercent:      deal.RescueBonusPercent,
		ActivatedAt:             deal.ActivatedAt,
		ExpiredAt:               deal.ExpiredAt,
		CancelledAt:             deal.CancelledAt,
		CancelReason:            deal.CancelReason,
		CreatedAt:               deal.CreatedAt,
		UpdatedAt:               deal.UpdatedAt,
	}
}

func ToDomainClaim(model *models.ClaimModel) *domain.Claim {
	return &domain.Claim{
		ID:                         model.ID,
		DealID:                     model.DealID,
		CustomerID:                 model.CustomerID,
		Position:                   model.Position,
		CouponCode:                 model.CouponCode,
		ReferredBy:                 model.ReferredBy,
		ClaimSource:                domain.ClaimSource(model.ClaimSource),
		ClaimedAtLevel:             model.ClaimedAtLevel,
		ClaimedDiscountPercent:     model.ClaimedDiscountPercent,
		MilestoneNotificationsSent: model.MilestoneNotificationsSent,
		ClaimedAt:                  model.ClaimedAt,
	}
}

func ToGORMClaim(claim *domain.Claim) *models.ClaimModel {
	return &models.ClaimModel{
		ID:                         claim.ID,
		DealID:                     claim.DealID,
		CustomerID:                 claim.CustomerID,
		Position:                   claim.Position,
		CouponCode:                 claim.CouponCode,
		ReferredBy:                 claim.ReferredBy,
		ClaimSource:                string(claim.ClaimSource),
		ClaimedAtLevel:             claim.ClaimedAtLevel,
		ClaimedDiscountPercent:     claim.ClaimedDiscountPercent,
		MilestoneNotificationsSent: claim.MilestoneNotificationsSent,
		ClaimedAt:                  claim.ClaimedAt,
	}
}

func ToDomainClaims(list []models.ClaimModel) []*domain.Claim {
	out := make([]*domain.Claim, 0, len(list))
	for i := range list {
		out = append(out, ToDomainClaim(&list[i]))
	}
	return out
}

func ToDomainShop(model *models.ShopModel) *domain.Shop {
	return &domain.Shop{
		ID:         model.ID,
		Name:       model.Name,
		OwnerID:    model.OwnerID,
		OwnerName:  model.OwnerName,
		OwnerPhone: model.OwnerPhone,
	}
}

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:    model.ID,
		Name:  model.Name,
		Phone: model.Phone,
	}
}
