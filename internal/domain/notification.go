package domain

//go:generate mockgen -source=notification.go -destination=mock/notification.go -package=mock

import "context"

type RescueAction string

const (
	RescueTimeExtension RescueAction = "time_extension"
	RescueBonusDiscount RescueAction = "bonus_discount"
)

// NotificationPort delivers deal events to customers and shop owners. Calls are
// fire-and-forget for the core: a returned error is logged, never retried here.
type NotificationPort interface {
	SendDealLive(ctx context.Context, customer *Customer, deal *Deal) error
	SendMilestone(ctx context.Context, deal *Deal, percent int) error
	SendTierUnlocked(ctx context.Context, deal *Deal, level int, tier ChainTier) error
	SendRescue(ctx context.Context, deal *Deal, action RescueAction) error
	SendActivation(ctx context.Context, customer *Customer, claim *Claim, deal *Deal) error
	SendActivationToShop(ctx context.Context, shop *Shop, deal *Deal) error
	SendExpiry(ctx context.Context, customer *Customer, deal *Deal) error
	SendAnalytics(ctx context.Context, shop *Shop, deal *Deal, analytics *DealAnalytics) error
}

type PayloadKind string

const (
	PayloadText    PayloadKind = "text"
	PayloadButtons PayloadKind = "buttons"
	PayloadList    PayloadKind = "list"
)

// NotificationPayload is the closed set of message shapes a notification can take.
type NotificationPayload interface {
	Kind() PayloadKind
}

type TextPayload struct {
	Body string `json:"body"`
}

func (TextPayload) Kind() PayloadKind { return PayloadText }

type Button struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ButtonsPayload struct {
	Body    string   `json:"body"`
	Buttons []Button `json:"buttons"`
}

func (ButtonsPayload) Kind() PayloadKind { return PayloadButtons }

type ListItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ListPayload struct {
	Body   string     `json:"body"`
	Button string     `json:"button"`
	Items  []ListItem `json:"items"`
}

func (ListPayload) Kind() PayloadKind { return PayloadList }
