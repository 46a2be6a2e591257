package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/internal/messaging"
	"openpay-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CallbackHandler receives the successful-payment redirect from the
// gateway. With a publisher configured the capture work is deferred to the
// callbacks topic; otherwise it runs in-request. Either way the customer is
// always redirected, never shown an error page.
type CallbackHandler struct {
	service   *payment.Service
	urls      payment.RouteURLBuilder
	publisher messaging.Publisher
	logger    *logger.Logger
}

func NewCallbackHandler(service *payment.Service, urls payment.RouteURLBuilder, publisher messaging.Publisher, l *logger.Logger) CallbackHandler {
	return CallbackHandler{
		service:   service,
		urls:      urls,
		publisher: publisher,
		logger:    l,
	}
}

type callbackParams struct {
	Status  string `form:"status"`
	PlanID  string `form:"planId"`
	OrderID int64  `form:"orderId"`
}

func (h *CallbackHandler) SuccessfulPayment(c *gin.Context) {
	var params callbackParams
	if err := c.ShouldBindQuery(&params); err != nil || params.OrderID == 0 || params.PlanID == "" || params.Status == "" {
		c.Redirect(http.StatusFound, h.urls.HomeURL())
		return
	}

	if h.publisher != nil {
		h.deferCallback(c, params)
		return
	}

	err := h.service.ProcessCallback(c, payment.CallbackRequest{
		OrderID:        params.OrderID,
		GatewayOrderID: params.PlanID,
		Status:         params.Status,
	})

	var rejected *payment.CallbackRejectedError
	if errors.As(err, &rejected) {
		c.Redirect(http.StatusFound, h.urls.HomeURL())
		return
	}
	if err != nil {
		// capture or persistence failed after a legitimate callback; the
		// customer still lands on their order
		h.logger.Error("Callback processing failed: order=%d error=%v", params.OrderID, err)
	}
	c.Redirect(http.StatusFound, h.urls.OrderDetailsURL(params.OrderID))
}

func (h *CallbackHandler) deferCallback(c *gin.Context, params callbackParams) {
	envelope, err := messaging.NewEnvelope(
		strconv.FormatInt(params.OrderID, 10),
		messaging.TypePaymentCallback,
		messaging.PaymentCallback{
			OrderID:        params.OrderID,
			GatewayOrderID: params.PlanID,
			Status:         params.Status,
			ReceivedAt:     time.Now().UTC(),
		},
	)
	if err == nil {
		err = h.publisher.Publish(c, envelope)
	}
	if err != nil {
		h.logger.Error("Failed to defer payment callback: order=%d error=%v", params.OrderID, err)
		c.Redirect(http.StatusFound, h.urls.HomeURL())
		return
	}
	c.Redirect(http.StatusFound, h.urls.OrderDetailsURL(params.OrderID))
}
