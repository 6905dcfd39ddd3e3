package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

// KafkaSink publishes notification events keyed by deal id.
type KafkaSink struct {
	publisher domain.PublisherPort
	topic     string
}

func NewKafkaSink(publisher domain.PublisherPort, topic string) *KafkaSink {
	return &KafkaSink{publisher: publisher, topic: topic}
}

func (s *KafkaSink) Deliver(ctx context.Context, event NotificationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, s.topic, domain.Message{Key: []byte(event.DealID), Value: value})
}

// LogSink writes notifications to the log instead of sending them. Used for
// local runs without a broker.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Deliver(ctx context.Context, event NotificationEvent) error {
	s.logger.InfoContext(ctx, "notification",
		"kind", event.Kind,
		"deal_id", event.DealID,
		"recipient_role", event.Recipient.Role,
		"recipient_id", event.Recipient.ID,
		"payload_type", event.Payload.Type,
		"payload", string(event.Payload.Body),
	)
	return nil
}
