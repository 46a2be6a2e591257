package app

import (
	"context"

	"openpay-gateway/config"
	"openpay-gateway/internal/controller/message"
	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/internal/external/kafka"
	"openpay-gateway/internal/messaging"
	"openpay-gateway/pkg/logger"
)

// StartWorkers starts the Kafka consumer for deferred payment callbacks and
// returns the publisher the HTTP handler enqueues callbacks with. The
// consumer stops when ctx is cancelled.
func StartWorkers(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	service *payment.Service,
) messaging.Publisher {
	publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaCallbacksTopic)
	dlqPublisher := kafka.NewDLQPublisher(l, cfg.KafkaBrokers, cfg.KafkaCallbacksDLQTopic)

	controller := message.NewCallbackController(l, service, dlqPublisher)
	consumer := kafka.NewConsumer(
		l,
		cfg.KafkaBrokers,
		cfg.KafkaCallbacksTopic,
		cfg.KafkaCallbacksConsumerGroup,
	)
	runner := messaging.NewRunner(l, controller.HandleMessage, consumer)

	go func() {
		defer publisher.Close()
		defer dlqPublisher.Close()

		l.Info("Starting callback consumer: topic=%s group=%s",
			cfg.KafkaCallbacksTopic, cfg.KafkaCallbacksConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			l.Error("Callback runner failed: error=%v", err)
		}
	}()

	return publisher
}
