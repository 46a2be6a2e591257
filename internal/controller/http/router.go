package http

import (
	"openpay-gateway/internal/controller/http/handlers"
	"openpay-gateway/pkg/health"
	"openpay-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	callback handlers.CallbackHandler
	payments handlers.PaymentsHandler
	health   *health.Registry
}

func NewRouter(callback handlers.CallbackHandler, payments handlers.PaymentsHandler, healthRegistry *health.Registry) *Router {
	return &Router{
		callback: callback,
		payments: payments,
		health:   healthRegistry,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET(CallbackPath, r.callback.SuccessfulPayment)

	internal := engine.Group("/internal")
	{
		internal.GET("/stores/:store_id/settings/validate", r.payments.ValidateSettings)
		internal.PUT("/stores/:store_id/settings", r.payments.SaveSettings)
		internal.POST("/stores/:store_id/limits/sync", r.payments.SyncLimits)
		internal.POST("/stores/:store_id/eligibility", r.payments.CheckEligibility)

		internal.GET("/orders/:order_id/repost-eligibility", r.payments.RepostEligibility)
		internal.POST("/orders/:order_id/place", r.payments.PlaceOrder)
		internal.POST("/orders/:order_id/capture", r.payments.CaptureOrder)
		internal.POST("/orders/:order_id/refund", r.payments.RefundOrder)
	}

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.health, health.DefaultTimeout))
}
