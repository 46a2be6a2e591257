package kafka

import (
	"context"
	"encoding/json"

	"openpay-gateway/internal/messaging"
	"openpay-gateway/pkg/correlation"
	"openpay-gateway/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// newWriter builds the writer shape both publishers share: key-hashed
// partitioning so callbacks for one order stay ordered, single-broker ack.
func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// Publisher puts callback envelopes on the deferred-processing topic.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewPublisher(l *logger.Logger, brokers []string, topic string) *Publisher {
	return &Publisher{writer: newWriter(brokers, topic), logger: l}
}

// Publish writes the envelope. The correlation id rides both inside the
// envelope and as a message header so the consumer can restore it before
// decoding the payload.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	if env.CorrelationID == "" {
		env.CorrelationID = correlation.FromContext(ctx)
	}

	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{Key: []byte(env.Key), Value: value}
	if env.CorrelationID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   correlation.KafkaHeaderName,
			Value: []byte(env.CorrelationID),
		})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish message: topic=%s key=%s error=%v",
			p.writer.Topic, env.Key, err)
		return err
	}

	p.logger.Debug("Message published: topic=%s key=%s event_id=%s",
		p.writer.Topic, env.Key, env.EventID)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
