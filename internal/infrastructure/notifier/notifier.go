package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

// Sink hands a composed notification to whatever delivers it.
type Sink interface {
	Deliver(ctx context.Context, event NotificationEvent) error
}

// Notifier implements domain.NotificationPort by composing payloads and passing
// them to a Sink. It never retries; delivery guarantees belong to the sink.
type Notifier struct {
	sink Sink
	now  func() time.Time
}

func New(sink Sink) *Notifier {
	return &Notifier{sink: sink, now: time.Now}
}

func (n *Notifier) SendDealLive(ctx context.Context, customer *domain.Customer, deal *domain.Deal) error {
	return n.emit(ctx, KindDealLive, deal, customerRecipient(customer), dealLiveMessage(customer, deal))
}

func (n *Notifier) SendMilestone(ctx context.Context, deal *domain.Deal, percent int) error {
	return n.emit(ctx, KindMilestone, deal, claimantsRecipient(deal), milestoneMessage(deal, percent))
}

func (n *Notifier) SendTierUnlocked(ctx context.Context, deal *domain.Deal, level int, tier domain.ChainTier) error {
	return n.emit(ctx, KindTierUnlocked, deal, claimantsRecipient(deal), tierUnlockedMessage(deal, level, tier))
}

func (n *Notifier) SendRescue(ctx context.Context, deal *domain.Deal, action domain.RescueAction) error {
	return n.emit(ctx, KindRescue, deal, claimantsRecipient(deal), rescueMessage(deal, action))
}

func (n *Notifier) SendActivation(ctx context.Context, customer *domain.Customer, claim *domain.Claim, deal *domain.Deal) error {
	return n.emit(ctx, KindActivation, deal, customerRecipient(customer), activationMessage(customer, claim, deal))
}

func (n *Notifier) SendActivationToShop(ctx context.Context, shop *domain.Shop, deal *domain.Deal) error {
	return n.emit(ctx, KindActivationShop, deal, ownerRecipient(shop), activationShopMessage(shop, deal))
}

func (n *Notifier) SendExpiry(ctx context.Context, customer *domain.Customer, deal *domain.Deal) error {
	return n.emit(ctx, KindExpiry, deal, customerRecipient(customer), expiryMessage(customer, deal))
}

func (n *Notifier) SendAnalytics(ctx context.Context, shop *domain.Shop, deal *domain.Deal, analytics *domain.DealAnalytics) error {
	return n.emit(ctx, KindAnalytics, deal, ownerRecipient(shop), analyticsMessage(shop, deal, analytics))
}

func (n *Notifier) emit(ctx context.Context, kind Kind, deal *domain.Deal, to Recipient, payload domain.NotificationPayload) error {
	envelope, err := encodePayload(payload)
	if err != nil {
		return fmt.Errorf("%s notification for deal %s: %w", kind, deal.ID, err)
	}
	return n.sink.Deliver(ctx, NotificationEvent{
		ID:        uuid.New().String(),
		Kind:      kind,
		DealID:    deal.ID,
		ShopID:    deal.ShopID,
		Recipient: to,
		Payload:   envelope,
		CreatedAt: n.now(),
	})
}

func customerRecipient(c *domain.Customer) Recipient {
	return Recipient{Role: RoleCustomer, ID: c.ID, Name: c.Name, Phone: c.Phone}
}

func ownerRecipient(s *domain.Shop) Recipient {
	return Recipient{Role: RoleShopOwner, ID: s.OwnerID, Name: s.OwnerName, Phone: s.OwnerPhone}
}

func claimantsRecipient(d *domain.Deal) Recipient {
	return Recipient{Role: RoleDealClaimants, ID: d.ID}
}
