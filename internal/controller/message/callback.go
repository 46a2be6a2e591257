package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/internal/external/kafka"
	"openpay-gateway/internal/messaging"
	"openpay-gateway/pkg/logger"
)

// CallbackController processes deferred payment callbacks from the
// callbacks topic. Rejected callbacks are final and committed; transient
// failures are returned so the message stays uncommitted and redelivers.
type CallbackController struct {
	service *payment.Service
	dlq     *kafka.DLQPublisher
	logger  *logger.Logger
}

func NewCallbackController(l *logger.Logger, service *payment.Service, dlq *kafka.DLQPublisher) *CallbackController {
	return &CallbackController{
		service: service,
		dlq:     dlq,
		logger:  l,
	}
}

func (c *CallbackController) HandleMessage(ctx context.Context, key, value []byte) error {
	var envelope messaging.Envelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		return c.sendToDLQ(ctx, key, value, fmt.Errorf("unmarshal envelope: %w", err))
	}

	if envelope.Type != messaging.TypePaymentCallback {
		c.logger.Warn("Skipping message of unexpected type: type=%s key=%s", envelope.Type, string(key))
		return nil
	}

	var callback messaging.PaymentCallback
	if err := json.Unmarshal(envelope.Payload, &callback); err != nil {
		return c.sendToDLQ(ctx, key, value, fmt.Errorf("unmarshal payment callback: %w", err))
	}

	err := c.service.ProcessCallback(ctx, payment.CallbackRequest{
		OrderID:        callback.OrderID,
		GatewayOrderID: callback.GatewayOrderID,
		Status:         callback.Status,
	})

	// a rejection is a final verdict, not a transient failure; the message
	// is committed and the reason already lives in the audit sink
	var rejected *payment.CallbackRejectedError
	if errors.As(err, &rejected) {
		return nil
	}
	var captureFailed *payment.CallbackCaptureError
	if errors.As(err, &captureFailed) {
		return c.sendToDLQ(ctx, key, value, captureFailed)
	}
	if err != nil {
		return fmt.Errorf("process callback for order %d: %w", callback.OrderID, err)
	}

	c.logger.Info("Deferred payment callback processed: order=%d event_id=%s", callback.OrderID, envelope.EventID)
	return nil
}

func (c *CallbackController) sendToDLQ(ctx context.Context, key, value []byte, cause error) error {
	if c.dlq == nil {
		return cause
	}
	if err := c.dlq.PublishToDLQ(ctx, key, value, cause); err != nil {
		return fmt.Errorf("publish to DLQ: %w", err)
	}
	return nil
}
