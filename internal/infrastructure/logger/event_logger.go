package logger

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
	"gorm.io/gorm"
)

type DealEventRecord struct {
	ID        uint   `gorm:"primaryKey"`
	DealID    string `gorm:"type:uuid;index"`
	Type      string
	Details   string
	Timestamp time.Time
}

func (DealEventRecord) TableName() string {
	return "deal_events"
}

type PGDealEventLogger struct {
	db *gorm.DB
}

func NewPGDealEventLogger(db *gorm.DB) *PGDealEventLogger {
	return &PGDealEventLogger{db: db}
}

func (l *PGDealEventLogger) LogDealEvent(ctx context.Context, event domain.DealEvent) error {
	return l.db.WithContext(ctx).Create(&DealEventRecord{
		DealID:    event.DealID,
		Type:      string(event.Type),
		Details:   event.Details,
		Timestamp: event.Timestamp,
	}).Error
}
