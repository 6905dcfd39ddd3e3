package domain

//go:generate mockgen -source=mq_port.go -destination=mock/mq_port.go -package=mock

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(ctx context.Context, topic string, msgs ...Message) error
}
