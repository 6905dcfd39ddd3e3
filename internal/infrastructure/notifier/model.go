package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

type Kind string

const (
	KindDealLive       Kind = "deal_live"
	KindMilestone      Kind = "milestone"
	KindTierUnlocked   Kind = "tier_unlocked"
	KindRescue         Kind = "rescue"
	KindActivation     Kind = "activation"
	KindActivationShop Kind = "activation_shop"
	KindExpiry         Kind = "expiry"
	KindAnalytics      Kind = "analytics"
)

type RecipientRole string

const (
	RoleCustomer  RecipientRole = "customer"
	RoleShopOwner RecipientRole = "shop_owner"
	// fanned out to everyone who claimed the deal by the delivery service
	RoleDealClaimants RecipientRole = "deal_claimants"
)

type Recipient struct {
	Role  RecipientRole `json:"role"`
	ID    string        `json:"id"`
	Name  string        `json:"name,omitempty"`
	Phone string        `json:"phone,omitempty"`
}

type PayloadEnvelope struct {
	Type domain.PayloadKind `json:"type"`
	Body json.RawMessage    `json:"body"`
}

// NotificationEvent is what the delivery service consumes from the topic.
type NotificationEvent struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	DealID    string          `json:"deal_id"`
	ShopID    string          `json:"shop_id"`
	Recipient Recipient       `json:"recipient"`
	Payload   PayloadEnvelope `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// encodePayload is the single place payload variants are told apart.
func encodePayload(p domain.NotificationPayload) (PayloadEnvelope, error) {
	var body interface{}
	switch v := p.(type) {
	case domain.TextPayload:
		body = v
	case domain.ButtonsPayload:
		if len(v.Buttons) == 0 || len(v.Buttons) > 3 {
			return PayloadEnvelope{}, fmt.Errorf("buttons payload needs 1..3 buttons, got %d", len(v.Buttons))
		}
		body = v
	case domain.ListPayload:
		if len(v.Items) == 0 {
			return PayloadEnvelope{}, fmt.Errorf("list payload without items")
		}
		body = v
	default:
		return PayloadEnvelope{}, fmt.Errorf("unsupported payload %T", p)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return PayloadEnvelope{}, err
	}
	return PayloadEnvelope{Type: p.Kind(), Body: raw}, nil
}
