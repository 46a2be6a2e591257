package kafka

import (
	"context"
	"errors"
	"time"

	"openpay-gateway/internal/messaging"
	"openpay-gateway/pkg/correlation"
	"openpay-gateway/pkg/logger"
	"openpay-gateway/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// Consumer feeds deferred callback messages to a handler. Commit is the
// acknowledgement: a message whose handler fails stays uncommitted and
// is redelivered by the broker.
type Consumer struct {
	reader *kafka.Reader
	logger *logger.Logger
}

func NewConsumer(l *logger.Logger, brokers []string, topic, groupID string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		logger: l,
	}
}

// Start fetches messages until the context is cancelled or the broker
// connection fails.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	topic := c.reader.Config().Topic
	group := c.reader.Config().GroupID
	c.logger.Info("Consumer started: topic=%s group_id=%s", topic, group)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				c.logger.Info("Consumer stopped (context cancelled)")
				return nil
			}
			c.logger.Error("Failed to fetch message: error=%v", err)
			return err
		}

		started := time.Now()
		handlerErr := handler(correlatedContext(ctx, msg), msg.Key, msg.Value)

		status := "ok"
		if handlerErr != nil {
			status = "error"
		}
		metrics.KafkaProcessingDuration.WithLabelValues(topic, group, status).Observe(time.Since(started).Seconds())
		metrics.KafkaMessagesProcessed.WithLabelValues(topic, group, status).Inc()

		if handlerErr != nil {
			c.logger.Error("Handler error, message not committed: topic=%s partition=%d offset=%d key=%s error=%v",
				msg.Topic, msg.Partition, msg.Offset, string(msg.Key), handlerErr)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("Failed to commit message: topic=%s partition=%d offset=%d error=%v",
				msg.Topic, msg.Partition, msg.Offset, err)
			return err
		}
		c.logger.Debug("Message committed: topic=%s partition=%d offset=%d",
			msg.Topic, msg.Partition, msg.Offset)
	}
}

// correlatedContext carries the producer's correlation id into the
// handler, minting a new id for messages that arrived without one.
func correlatedContext(ctx context.Context, msg kafka.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == correlation.KafkaHeaderName && len(h.Value) > 0 {
			return correlation.WithID(ctx, string(h.Value))
		}
	}
	return correlation.WithID(ctx, correlation.NewID())
}

func (c *Consumer) Close() error {
	c.logger.Info("Closing consumer: topic=%s group_id=%s",
		c.reader.Config().Topic, c.reader.Config().GroupID)
	return c.reader.Close()
}
