package handlers

import (
	"net/http"
	"strconv"

	"openpay-gateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentsHandler is the internal API the host shop calls: configuration
// validation, checkout eligibility, order placement, capture, refund and
// admin-triggered limits sync.
type PaymentsHandler struct {
	service *payment.Service
}

func NewPaymentsHandler(service *payment.Service) PaymentsHandler {
	return PaymentsHandler{service: service}
}

func (h *PaymentsHandler) ValidateSettings(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	valid, errs := h.service.Validate(c, storeID)
	c.JSON(http.StatusOK, gin.H{"valid": valid, "errors": errs})
}

type settingsParams struct {
	UseSandbox              bool            `json:"use_sandbox"`
	APIToken                string          `json:"api_token"`
	RegionTwoLetterISOCode  string          `json:"region_iso_code"`
	MinOrderTotal           decimal.Decimal `json:"min_order_total"`
	MaxOrderTotal           decimal.Decimal `json:"max_order_total"`
	AdditionalFee           decimal.Decimal `json:"additional_fee"`
	AdditionalFeePercentage bool            `json:"additional_fee_percentage"`
	PlanTiers               string          `json:"plan_tiers"`

	DisplayProductPageWidget    bool `json:"display_product_page_widget"`
	DisplayProductListingWidget bool `json:"display_product_listing_widget"`
	DisplayCartWidget           bool `json:"display_cart_widget"`
	DisplayInfoBeltWidget       bool `json:"display_info_belt_widget"`
	DisplayLandingPageWidget    bool `json:"display_landing_page_widget"`
	LogCallbackErrors           bool `json:"log_callback_errors"`
}

func (h *PaymentsHandler) SaveSettings(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	var params settingsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	saved, err := h.service.SaveSettings(c, payment.Settings{
		StoreID:                 storeID,
		UseSandbox:              params.UseSandbox,
		APIToken:                params.APIToken,
		RegionTwoLetterISOCode:  params.RegionTwoLetterISOCode,
		MinOrderTotal:           params.MinOrderTotal,
		MaxOrderTotal:           params.MaxOrderTotal,
		AdditionalFee:           params.AdditionalFee,
		AdditionalFeePercentage: params.AdditionalFeePercentage,
		PlanTiers:               params.PlanTiers,

		DisplayProductPageWidget:    params.DisplayProductPageWidget,
		DisplayProductListingWidget: params.DisplayProductListingWidget,
		DisplayCartWidget:           params.DisplayCartWidget,
		DisplayInfoBeltWidget:       params.DisplayInfoBeltWidget,
		DisplayLandingPageWidget:    params.DisplayLandingPageWidget,
		LogCallbackErrors:           params.LogCallbackErrors,
	})
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan_tiers": saved.PlanTiers})
}

func (h *PaymentsHandler) SyncLimits(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	settings, err := h.service.SyncLimits(c, storeID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"min_order_total": settings.MinOrderTotal,
		"max_order_total": settings.MaxOrderTotal,
	})
}

type eligibilityParams struct {
	Total                *decimal.Decimal `json:"total"`
	SubTotalWithDiscount decimal.Decimal  `json:"sub_total_with_discount"`
	RequiresShipping     bool             `json:"requires_shipping"`
}

func (h *PaymentsHandler) CheckEligibility(c *gin.Context) {
	storeID, ok := pathID(c, "store_id")
	if !ok {
		return
	}

	var params eligibilityParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	displayable := h.service.CanDisplayPaymentMethod(c, payment.Cart{
		StoreID:              storeID,
		Total:                params.Total,
		SubTotalWithDiscount: params.SubTotalWithDiscount,
		RequiresShipping:     params.RequiresShipping,
	})
	c.JSON(http.StatusOK, gin.H{
		"payment_method": displayable,
		"widgets":        h.service.CanDisplayWidget(c, storeID),
	})
}

func (h *PaymentsHandler) PlaceOrder(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	handoverURL, errs := h.service.PlaceOrderByID(c, orderID)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"handover_url": handoverURL})
}

func (h *PaymentsHandler) CaptureOrder(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	transactionID, errs := h.service.CaptureOrderByID(c, orderID)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction_id": transactionID})
}

// RepostEligibility tells the host whether it may offer the customer a
// "retry payment" action for a pending order.
func (h *PaymentsHandler) RepostEligibility(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	eligible, err := h.service.CanRepostPayment(c, orderID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"eligible": eligible})
}

type refundParams struct {
	Amount *decimal.Decimal `json:"amount"` // nil means full refund
}

func (h *PaymentsHandler) RefundOrder(c *gin.Context) {
	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	var params refundParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	refunded, errs := h.service.RefundOrderByID(c, orderID, params.Amount)
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}
	c.JSON(http.StatusOK, gin.H{"refunded": refunded})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name})
		return 0, false
	}
	return id, true
}
