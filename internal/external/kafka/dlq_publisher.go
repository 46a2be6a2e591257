package kafka

import (
	"context"
	"time"

	"openpay-gateway/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// DLQPublisher parks callbacks whose capture permanently failed on a dead
// letter topic for manual inspection.
type DLQPublisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewDLQPublisher(l *logger.Logger, brokers []string, dlqTopic string) *DLQPublisher {
	return &DLQPublisher{writer: newWriter(brokers, dlqTopic), logger: l}
}

// PublishToDLQ forwards the original message bytes with the failure
// reason and timestamp attached as headers.
func (p *DLQPublisher) PublishToDLQ(ctx context.Context, key, value []byte, cause error) error {
	msg := kafka.Message{
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: "error", Value: []byte(cause.Error())},
			{Key: "failed_at", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish to DLQ: topic=%s key=%s error=%v original_error=%v",
			p.writer.Topic, string(key), err, cause)
		return err
	}

	p.logger.Warn("Message sent to DLQ: topic=%s key=%s error=%v",
		p.writer.Topic, string(key), cause)
	return nil
}

func (p *DLQPublisher) Close() error {
	return p.writer.Close()
}
