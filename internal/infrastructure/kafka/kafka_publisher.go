package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/LavaJover/shvark-flashdeal-service/internal/domain"
)

const defaultMaxRetries = 3

type DefaultKafkaPublisher struct {
	writer     *kafka.Writer
	maxRetries int
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
		maxRetries: defaultMaxRetries,
	}
}

// Publish writes msgs to topic, retrying the whole batch with a growing delay.
// Messages sharing a key land on the same partition, so one deal's
// notifications stay ordered.
func (k *DefaultKafkaPublisher) Publish(ctx context.Context, topic string, msgs ...domain.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	km := make([]kafka.Message, 0, len(msgs))
	now := time.Now()
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Topic: topic,
			Key:   m.Key,
			Value: m.Value,
			Time:  now,
		})
	}

	var err error
	for attempt := 1; attempt <= k.maxRetries; attempt++ {
		if err = k.writer.WriteMessages(ctx, km...); err == nil {
			return nil
		}
		slog.Warn("kafka publish attempt failed", "topic", topic, "attempt", attempt, "error", err)

		if attempt < k.maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}
	}
	return fmt.Errorf("publish to %s failed after %d attempts: %w", topic, k.maxRetries, err)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
