package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adityarama/shopfront/internal/payment/app"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher writes order.placed events. One message per completed
// order, keyed by order id.
type Publisher struct {
	writer *kafkago.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.LeastBytes{},
			RequiredAcks:           kafkago.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Publisher) OrderPlaced(ctx context.Context, evt app.OrderPlaced) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal order placed event: %w", err)
	}
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(evt.OrderID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
