package domain

//go:generate mockgen -source=deal_event.go -destination=mock/event_logger.go -package=mock

import (
	"context"
	"time"
)

type DealEventType string

const (
	EventDealCreated   DealEventType = "created"
	EventDealStarted   DealEventType = "started"
	EventDealActivated DealEventType = "activated"
	EventDealExpired   DealEventType = "expired"
	EventDealCancelled DealEventType = "cancelled"
	EventTierUnlocked  DealEventType = "tier_unlocked"
	EventRescueApplied DealEventType = "rescue_applied"
)

type DealEvent struct {
	DealID    string
	Type      DealEventType
	Details   string
	Timestamp time.Time
}

// EventLogger keeps an audit trail of deal lifecycle transitions.
type EventLogger interface {
	LogDealEvent(ctx context.Context, event DealEvent) error
}
