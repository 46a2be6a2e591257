package payment

import (
	"context"
	"fmt"
	"strings"
)

// CallbackRequest is a successful-payment redirect from the gateway:
// the local order id, the gateway order id (named planId on the wire) and
// the plan status the gateway claims.
type CallbackRequest struct {
	OrderID        int64
	GatewayOrderID string
	Status         string
}

// CallbackRejectedError marks a callback the defense-in-depth checks turned
// away. The user is still redirected; the reason stays in the logs and the
// audit sink.
type CallbackRejectedError struct {
	Reason string
}

func (e *CallbackRejectedError) Error() string {
	return "payment callback rejected: " + e.Reason
}

// CallbackCaptureError means the callback itself was legitimate but the
// capture call failed. The user still lands on the order details page.
type CallbackCaptureError struct {
	Reason string
}

func (e *CallbackCaptureError) Error() string {
	return "payment callback capture failed: " + e.Reason
}

// ProcessCallback re-validates a successful-payment callback against the
// gateway before mutating any local state. Query parameters are never
// trusted: the order and plan status are re-fetched and checked strictly,
// then the order is captured and marked as paid.
func (s *Service) ProcessCallback(ctx context.Context, req CallbackRequest) error {
	o, err := s.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return s.rejectCallback(ctx, 0, "", fmt.Sprintf("The order '%d' was not found.", req.OrderID))
	}

	settings, _, errs := s.validatedSnapshot(ctx, o.StoreID)
	if len(errs) > 0 {
		return s.rejectCallback(ctx, o.StoreID, o.Number, strings.Join(errs, " "))
	}

	client, err := s.apiFactory.ClientFor(settings)
	if err != nil {
		return s.rejectCallback(ctx, o.StoreID, o.Number, err.Error())
	}

	status, err := client.GetOrderStatusByID(ctx, req.GatewayOrderID)
	if err != nil || status == nil {
		return s.rejectCallback(ctx, o.StoreID, o.Number,
			fmt.Sprintf("Cannot get the OpenPay order by id '%s'.", req.GatewayOrderID))
	}

	if !strings.EqualFold(status.PlanStatus, req.Status) {
		return s.rejectCallback(ctx, o.StoreID, o.Number,
			fmt.Sprintf("The OpenPay plan status '%s' is invalid.", req.Status))
	}
	if !strings.EqualFold(status.OrderStatus, OrderStatusPending) {
		return s.rejectCallback(ctx, o.StoreID, o.Number,
			fmt.Sprintf("The OpenPay order status '%s' is invalid.", status.OrderStatus))
	}
	if !strings.EqualFold(status.PlanStatus, PlanStatusLodged) {
		return s.rejectCallback(ctx, o.StoreID, o.Number,
			"The OpenPay plan status should be 'Lodged'.")
	}

	if !o.PaymentStatus.CanBeMarkedAsPaid() {
		return s.rejectCallback(ctx, o.StoreID, o.Number,
			fmt.Sprintf("The order '%s' already marked as paid.", o.Number))
	}

	transactionID, captureErrs := s.CaptureOrder(ctx, o)
	if len(captureErrs) > 0 {
		reason := strings.Join(captureErrs, "\n")
		s.logger.Error("Capture after callback failed: order=%s error=%s", o.Number, reason)
		s.RecordCallbackRejection(ctx, o.StoreID, o.Number, reason)
		return &CallbackCaptureError{Reason: reason}
	}

	if err := s.orders.SetCaptureTransactionID(ctx, o.ID, transactionID); err != nil {
		return fmt.Errorf("persist capture transaction for order %s: %w", o.Number, err)
	}
	if err := s.orders.MarkAsPaid(ctx, o.ID); err != nil {
		return fmt.Errorf("mark order %s as paid: %w", o.Number, err)
	}
	return nil
}

func (s *Service) rejectCallback(ctx context.Context, storeID int64, orderNumber, reason string) error {
	s.logger.Error("Invalid processing payment after the order successfully placed on OpenPay. %s", reason)
	s.RecordCallbackRejection(ctx, storeID, orderNumber, reason)
	return &CallbackRejectedError{Reason: reason}
}
