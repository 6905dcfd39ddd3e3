package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

func dealLiveMessage(customer *domain.Customer, deal *domain.Deal) domain.NotificationPayload {
	content := deal.Content(false)
	body := fmt.Sprintf("Hi %s, %s is live! If %d people claim it within %d minutes, everyone gets the discount.",
		nameOr(customer.Name, "there"), content.Title, deal.TargetClaims, deal.TimeLimitMinutes)
	if content.DiscountPercent != nil {
		body = fmt.Sprintf("Hi %s, %s is live with %s%% off! If %d people claim it within %d minutes, everyone gets the discount.",
			nameOr(customer.Name, "there"), content.Title, percent(*content.DiscountPercent), deal.TargetClaims, deal.TimeLimitMinutes)
	}
	return domain.ButtonsPayload{
		Body: body,
		Buttons: []domain.Button{
			{ID: "claim:" + deal.ID, Title: "Claim deal"},
			{ID: "share:" + deal.ID, Title: "Share"},
		},
	}
}

func milestoneMessage(deal *domain.Deal, pct int) domain.NotificationPayload {
	return domain.ButtonsPayload{
		Body: fmt.Sprintf("%s is %d%% of the way there: %d of %d claimed. Share it to unlock the deal for everyone.",
			deal.Content(false).Title, pct, deal.CurrentClaims, deal.TargetClaims),
		Buttons: []domain.Button{{ID: "share:" + deal.ID, Title: "Share"}},
	}
}

func tierUnlockedMessage(deal *domain.Deal, level int, tier domain.ChainTier) domain.NotificationPayload {
	body := fmt.Sprintf("Level %d unlocked on %s! The discount is now %s%%.",
		level, deal.Content(false).Title, percent(deal.DiscountPercent))
	if next, ok := deal.Tier(level + 1); ok {
		body += fmt.Sprintf(" %d more claims unlock %s%%.", max(0, next.ClaimThreshold-deal.CurrentClaims), percent(next.DiscountPercent))
	}
	return domain.TextPayload{Body: body}
}

func rescueMessage(deal *domain.Deal, action domain.RescueAction) domain.NotificationPayload {
	title := deal.Content(false).Title
	if action == domain.RescueTimeExtension {
		return domain.TextPayload{Body: fmt.Sprintf("Almost there! %s gets %d extra minutes and now ends at %s.",
			title, deal.RescueExtensionMinutes, deal.ExpiresAt.Format("15:04"))}
	}
	return domain.TextPayload{Body: fmt.Sprintf("Bonus! The discount on %s went up to %s%%. Only %d claims to go.",
		title, percent(deal.DiscountPercent), deal.Shortfall())}
}

func activationMessage(customer *domain.Customer, claim *domain.Claim, deal *domain.Deal) domain.NotificationPayload {
	content := deal.Content(true)
	code := ""
	if claim.CouponCode != nil {
		code = *claim.CouponCode
	}
	body := fmt.Sprintf("Congrats %s, the deal is unlocked! %s: %s%% off. Your coupon code is %s.",
		nameOr(customer.Name, "there"), content.Title, percent(deal.DiscountPercent), code)
	if content.Product != "" {
		body += " Product: " + content.Product + "."
	}
	if deal.CouponValidUntil != nil {
		body += " Valid until " + deal.CouponValidUntil.Format("02 Jan 15:04") + "."
	}
	return domain.ButtonsPayload{
		Body:    body,
		Buttons: []domain.Button{{ID: "coupon:" + claim.ID, Title: "Show coupon"}},
	}
}

func activationShopMessage(shop *domain.Shop, deal *domain.Deal) domain.NotificationPayload {
	return domain.TextPayload{Body: fmt.Sprintf("%s, your deal %s was unlocked with %d claims. Customers received coupons at %s%% off.",
		nameOr(shop.OwnerName, shop.Name), deal.Content(true).Title, deal.CurrentClaims, percent(deal.DiscountPercent))}
}

func expiryMessage(customer *domain.Customer, deal *domain.Deal) domain.NotificationPayload {
	return domain.ButtonsPayload{
		Body: fmt.Sprintf("Sorry %s, %s ended with %d of %d claims, so it was not unlocked. Follow the shop to catch the next one.",
			nameOr(customer.Name, "there"), deal.Content(false).Title, deal.CurrentClaims, deal.TargetClaims),
		Buttons: []domain.Button{{ID: "follow:" + deal.ShopID, Title: "Follow shop"}},
	}
}

func analyticsMessage(shop *domain.Shop, deal *domain.Deal, a *domain.DealAnalytics) domain.NotificationPayload {
	body := fmt.Sprintf("%s ended at %s%% of target (%d of %d, %d short). Conversion %s%%, referrals %s%%.",
		deal.Content(true).Title, percent(a.CompletionPercent), a.TotalClaims, a.TargetClaims, a.Shortfall,
		percent(a.ConversionRate), percent(a.ReferralPercent))
	if a.PeakHour >= 0 {
		body += fmt.Sprintf(" Busiest hour %02d:00.", a.PeakHour)
	}

	items := make([]domain.ListItem, 0, len(a.Suggestions))
	for i, s := range a.Suggestions {
		items = append(items, domain.ListItem{ID: "tip:" + strconv.Itoa(i+1), Title: s.Code, Description: s.Message})
	}
	if len(items) == 0 {
		return domain.TextPayload{Body: body}
	}
	return domain.ListPayload{Body: body, Button: "See tips", Items: items}
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func percent(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}
