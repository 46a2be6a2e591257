package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"openpay-gateway/internal/domain/order"
	"openpay-gateway/internal/domain/store"
	"openpay-gateway/pkg/logger"

	"github.com/shopspring/decimal"
)

// Service orchestrates the order lifecycle against the OpenPay gateway:
// configuration validation, checkout/widget eligibility, order placement,
// capture and refund.
type Service struct {
	settingsRepo SettingsRepo
	stores       store.Repo
	orders       order.Repo
	customers    order.CustomerRepo
	apiFactory   APIFactory
	urls         RouteURLBuilder
	nameSettings CustomerNameSettings
	events       EventSink
	logger       *logger.Logger
}

func NewService(
	settingsRepo SettingsRepo,
	stores store.Repo,
	orders order.Repo,
	customers order.CustomerRepo,
	apiFactory APIFactory,
	urls RouteURLBuilder,
	nameSettings CustomerNameSettings,
	events EventSink,
	l *logger.Logger,
) *Service {
	if events == nil {
		events = NoopEventSink{}
	}
	return &Service{
		settingsRepo: settingsRepo,
		stores:       stores,
		orders:       orders,
		customers:    customers,
		apiFactory:   apiFactory,
		urls:         urls,
		nameSettings: nameSettings,
		events:       events,
		logger:       l,
	}
}

// Validate checks that the store's gateway configuration is complete and
// consistent. All other operations call this first and short-circuit on
// failure.
func (s *Service) Validate(ctx context.Context, storeID int64) (bool, []string) {
	_, _, errs := s.validatedSnapshot(ctx, storeID)
	return len(errs) == 0, errs
}

// validatedSnapshot loads the settings snapshot and the store, runs the
// field-level and currency checks, and resolves the region.
func (s *Service) validatedSnapshot(ctx context.Context, storeID int64) (Settings, Region, []string) {
	var errs []string

	st, err := s.stores.GetByID(ctx, storeID)
	if err != nil {
		return Settings{}, Region{}, []string{fmt.Sprintf("Cannot load the store '%d'.", storeID)}
	}

	settings, err := s.settingsRepo.Load(ctx, storeID)
	if err != nil {
		return Settings{}, Region{}, []string{fmt.Sprintf("Cannot load the OpenPay settings for the store '%s'.", st.Name)}
	}

	if strings.TrimSpace(settings.APIToken) == "" {
		errs = append(errs, "The API Token is required.")
	}
	if strings.TrimSpace(settings.RegionTwoLetterISOCode) == "" {
		errs = append(errs, "The country is required.")
	}
	if strings.TrimSpace(settings.PlanTiers) == "" {
		errs = append(errs, "The plan tiers are required.")
	}
	if len(errs) > 0 {
		return settings, Region{}, errs
	}

	region, ok := settings.Region()
	if !ok {
		return settings, Region{}, []string{fmt.Sprintf("No OpenPay region is available for the country '%s'.", settings.RegionTwoLetterISOCode)}
	}

	if !strings.EqualFold(st.CurrencyCode, region.CurrencyCode) {
		return settings, region, []string{fmt.Sprintf(
			"The primary store currency '%s' must match the currency '%s' of the country '%s'.",
			st.CurrencyCode, region.CurrencyCode, region.TwoLetterISOCode)}
	}

	return settings, region, nil
}

// SaveSettings persists a per-store configuration snapshot. Plan tiers are
// normalized to ascending order before the save so the storefront widgets
// always render the installment options in order.
func (s *Service) SaveSettings(ctx context.Context, settings Settings) (Settings, error) {
	tiers, err := NormalizePlanTiers(settings.PlanTiers)
	if err != nil {
		return Settings{}, fmt.Errorf("save settings for store %d: %w", settings.StoreID, err)
	}
	settings.PlanTiers = tiers

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return Settings{}, fmt.Errorf("save settings for store %d: %w", settings.StoreID, err)
	}
	return settings, nil
}

// CanRepostPayment reports whether the host may offer the customer a retry
// of the redirect flow for the order.
func (s *Service) CanRepostPayment(ctx context.Context, orderID int64) (bool, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("load order %d: %w", orderID, err)
	}
	if o.PaymentMethod != order.PaymentMethodSystemName || o.PaymentStatus != order.PaymentStatusPending {
		return false, nil
	}
	return o.CanRePostProcessPayment(time.Now()), nil
}

// CanDisplayPaymentMethod reports whether the gateway may be offered for the
// given cart at checkout. The gateway only supports shippable goods, and the
// cart total must fall inside the synced order limits (inclusive).
func (s *Service) CanDisplayPaymentMethod(ctx context.Context, cart Cart) bool {
	settings, _, errs := s.validatedSnapshot(ctx, cart.StoreID)
	if len(errs) > 0 {
		return false
	}

	if !settings.HasOrderLimits() {
		return false
	}

	if !cart.RequiresShipping {
		return false
	}

	total := cart.EffectiveTotal()
	if total.LessThan(settings.MinOrderTotal) || total.GreaterThan(settings.MaxOrderTotal) {
		return false
	}

	return true
}

// CanDisplayWidget reports whether informational widgets may be shown for
// the store. Unlike checkout eligibility there is no cart to range-check.
func (s *Service) CanDisplayWidget(ctx context.Context, storeID int64) bool {
	settings, _, errs := s.validatedSnapshot(ctx, storeID)
	if len(errs) > 0 {
		return false
	}
	return settings.HasOrderLimits()
}

// PlaceOrder creates the gateway order and returns the handover URL to
// redirect the customer to; on failure it returns the accumulated errors.
func (s *Service) PlaceOrder(ctx context.Context, o order.Order) (string, []string) {
	settings, _, errs := s.validatedSnapshot(ctx, o.StoreID)
	if len(errs) > 0 {
		return "", errs
	}

	addr := o.DeliveryAddress()
	if addr == nil {
		return "", []string{fmt.Sprintf("Cannot process payment for order %s. The shipping address not found.", o.Number)}
	}
	if strings.TrimSpace(addr.StateAbbreviation) == "" {
		return "", []string{fmt.Sprintf("Cannot process payment for order %s. The state not found.", o.Number)}
	}

	suburb := addr.City
	if suburb == "" {
		suburb = addr.County
	}
	deliveryAddress := &CustomerAddress{
		Line1:    addr.Line1,
		Line2:    addr.Line2,
		Suburb:   suburb,
		State:    addr.StateAbbreviation,
		PostCode: addr.ZipPostalCode,
	}

	customer, err := s.customers.GetByID(ctx, o.CustomerID)
	if err != nil {
		return "", []string{fmt.Sprintf("Cannot process payment for order %s. The customer not found.", o.Number)}
	}

	details := &PersonalDetails{
		Email:           customer.Email,
		DeliveryAddress: deliveryAddress,
		FirstName:       s.resolveFirstName(o, *addr, customer),
		FamilyName:      s.resolveFamilyName(o, *addr, customer),
	}

	failURL := s.urls.OrderDetailsURL(o.ID)
	deliveryMethod := "Delivery"
	if o.PickupInStore {
		deliveryMethod = "Pickup"
	}

	request := &CreateOrderRequest{
		PurchasePrice:   ToMinorUnits(o.Total),
		RetailerOrderNo: strconv.FormatInt(o.ID, 10),
		Cart:            buildCartItems(o.Items),
		CustomerJourney: &CustomerJourney{
			Origin: "Online",
			Online: &OnlineJourneyDetails{
				CallbackURL:      s.urls.CallbackURL(),
				CancelURL:        failURL,
				FailURL:          failURL,
				PlanCreationType: "pending",
				DeliveryMethod:   deliveryMethod,
				CustomerDetails:  details,
			},
		},
	}

	client, err := s.apiFactory.ClientFor(settings)
	if err != nil {
		return "", []string{err.Error()}
	}

	created, err := client.CreateOrder(ctx, request)
	if err != nil {
		s.logger.Error("OpenPay create order failed: order=%s error=%v", o.Number, err)
		return "", []string{apiErrorMessage(err)}
	}

	if url := handoverURL(created); url != "" {
		s.recordEvent(ctx, Event{
			Kind:           EventOrderPlaced,
			StoreID:        o.StoreID,
			OrderID:        o.Number,
			GatewayOrderID: created.OrderID,
		})
		return url, nil
	}

	return "", []string{fmt.Sprintf("Cannot process payment for order %s. Cannot get the handover URL to redirect user to OpenPay gateway.", o.Number)}
}

// PlaceOrderByID loads the order and places it with the gateway.
func (s *Service) PlaceOrderByID(ctx context.Context, orderID int64) (string, []string) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", []string{fmt.Sprintf("Cannot load the order '%d'.", orderID)}
	}
	return s.PlaceOrder(ctx, o)
}

// CaptureOrderByID loads the order, captures it and persists the result.
func (s *Service) CaptureOrderByID(ctx context.Context, orderID int64) (string, []string) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", []string{fmt.Sprintf("Cannot load the order '%d'.", orderID)}
	}

	transactionID, errs := s.CaptureOrder(ctx, o)
	if len(errs) > 0 {
		return "", errs
	}
	if err := s.orders.SetCaptureTransactionID(ctx, o.ID, transactionID); err != nil {
		return "", []string{fmt.Sprintf("Cannot store the captured transaction id for the order '%s'.", o.Number)}
	}
	if o.PaymentStatus.CanBeMarkedAsPaid() {
		if err := s.orders.MarkAsPaid(ctx, o.ID); err != nil {
			return "", []string{fmt.Sprintf("Cannot mark the order '%s' as paid.", o.Number)}
		}
	}
	return transactionID, nil
}

// RefundOrderByID loads the order and refunds it.
func (s *Service) RefundOrderByID(ctx context.Context, orderID int64, amountToRefund *decimal.Decimal) (bool, []string) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return false, []string{fmt.Sprintf("Cannot load the order '%d'.", orderID)}
	}
	return s.RefundOrder(ctx, o, amountToRefund)
}

// CaptureOrder looks the gateway order up by the retailer reference and
// captures it. The gateway must report the order as Pending with a Lodged
// plan; any other combination is not capturable.
func (s *Service) CaptureOrder(ctx context.Context, o order.Order) (string, []string) {
	settings, _, errs := s.validatedSnapshot(ctx, o.StoreID)
	if len(errs) > 0 {
		return "", errs
	}

	client, err := s.apiFactory.ClientFor(settings)
	if err != nil {
		return "", []string{err.Error()}
	}

	retailerRef := strconv.FormatInt(o.ID, 10)
	status, err := client.GetOrderStatusByRetailerID(ctx, retailerRef)
	if err != nil {
		s.logger.Error("OpenPay order lookup failed: order=%s error=%v", o.Number, err)
		return "", []string{apiErrorMessage(err)}
	}
	if status == nil {
		return "", []string{fmt.Sprintf("Cannot capture payment for order %s. Cannot get the OpenPay order by retailer order id '%s'.", o.Number, retailerRef)}
	}

	if !strings.EqualFold(status.OrderStatus, OrderStatusPending) || !strings.EqualFold(status.PlanStatus, PlanStatusLodged) {
		s.logger.Error("OpenPay order not capturable: order=%s order_status=%s plan_status=%s",
			o.Number, status.OrderStatus, status.PlanStatus)
		return "", []string{fmt.Sprintf("Cannot capture payment for order %s. The OpenPay order status is '%s' and the plan status is '%s'.",
			o.Number, status.OrderStatus, status.PlanStatus)}
	}

	captured, err := client.CaptureOrderByID(ctx, status.OrderID)
	if err != nil {
		s.logger.Error("OpenPay capture failed: order=%s error=%v", o.Number, err)
		return "", []string{apiErrorMessage(err)}
	}
	if captured == nil {
		return "", []string{fmt.Sprintf("Cannot capture payment for order %s.", o.Number)}
	}

	s.recordEvent(ctx, Event{
		Kind:           EventOrderCaptured,
		StoreID:        o.StoreID,
		OrderID:        o.Number,
		GatewayOrderID: captured.OrderID,
	})
	return captured.OrderID, nil
}

// RefundOrder creates a refund for a previously captured order. A nil
// amountToRefund means a full refund; otherwise the refund is partial,
// expressed as "reduce price by" in minor units.
func (s *Service) RefundOrder(ctx context.Context, o order.Order, amountToRefund *decimal.Decimal) (bool, []string) {
	settings, _, errs := s.validatedSnapshot(ctx, o.StoreID)
	if len(errs) > 0 {
		return false, errs
	}

	if o.CaptureTransactionID == "" {
		return false, []string{"Cannot refund the OpenPay order. The captured transaction id is empty."}
	}

	request := &CreateRefundRequest{FullRefund: true}
	if amountToRefund != nil {
		request.FullRefund = false
		request.ReducePriceBy = ToMinorUnits(*amountToRefund)
	}

	client, err := s.apiFactory.ClientFor(settings)
	if err != nil {
		return false, []string{err.Error()}
	}

	refund, err := client.CreateRefund(ctx, o.CaptureTransactionID, request)
	if err != nil {
		s.logger.Error("OpenPay refund failed: order=%s error=%v", o.Number, err)
		return false, []string{apiErrorMessage(err)}
	}
	if refund == nil {
		return false, []string{fmt.Sprintf("Cannot refund the OpenPay order. Cannot create the OpenPay refund by captured order id '%s'.", o.CaptureTransactionID)}
	}

	s.recordEvent(ctx, Event{
		Kind:           EventOrderRefunded,
		StoreID:        o.StoreID,
		OrderID:        o.Number,
		GatewayOrderID: o.CaptureTransactionID,
	})
	return true, nil
}

// SyncLimits pulls the current order total limits from the gateway and
// persists them on the store settings. Limits arrive in minor units and are
// stored in major units.
func (s *Service) SyncLimits(ctx context.Context, storeID int64) (Settings, error) {
	settings, _, errs := s.validatedSnapshot(ctx, storeID)
	if len(errs) > 0 {
		return Settings{}, fmt.Errorf("sync limits for store %d: %s", storeID, strings.Join(errs, " "))
	}

	client, err := s.apiFactory.ClientFor(settings)
	if err != nil {
		return Settings{}, err
	}

	limits, err := client.GetOrderLimits(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("get order limits for store %d: %w", storeID, err)
	}

	settings.MinOrderTotal = ToMajorUnits(limits.MinPrice)
	settings.MaxOrderTotal = ToMajorUnits(limits.MaxPrice)
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return Settings{}, fmt.Errorf("save limits for store %d: %w", storeID, err)
	}

	s.recordEvent(ctx, Event{
		Kind:    EventLimitsSynced,
		StoreID: storeID,
		Detail:  fmt.Sprintf("min=%s max=%s", settings.MinOrderTotal, settings.MaxOrderTotal),
	})
	return settings, nil
}

// RecordCallbackRejection audits a rejected payment callback.
func (s *Service) RecordCallbackRejection(ctx context.Context, storeID int64, orderNumber, reason string) {
	s.recordEvent(ctx, Event{
		Kind:    EventCallbackRejected,
		StoreID: storeID,
		OrderID: orderNumber,
		Detail:  reason,
	})
}

// The shipping address name wins for shipped orders; otherwise the name
// falls back to the customer attributes, then the username or email,
// depending on what the storefront collects. The order is significant.
func (s *Service) resolveFirstName(o order.Order, addr order.Address, customer order.Customer) string {
	if !o.PickupInStore && strings.TrimSpace(addr.FirstName) != "" {
		return addr.FirstName
	}
	if s.nameSettings.FirstNameEnabled {
		return customer.FirstName
	}
	if s.nameSettings.UsernamesEnabled {
		return customer.Username
	}
	return customer.Email
}

func (s *Service) resolveFamilyName(o order.Order, addr order.Address, customer order.Customer) string {
	if !o.PickupInStore && strings.TrimSpace(addr.LastName) != "" {
		return addr.LastName
	}
	if s.nameSettings.LastNameEnabled {
		return customer.LastName
	}
	if s.nameSettings.UsernamesEnabled {
		return customer.Username
	}
	return customer.Email
}

func (s *Service) recordEvent(ctx context.Context, event Event) {
	if err := s.events.Record(ctx, event); err != nil {
		s.logger.Error("Failed to record payment event: kind=%s order=%s error=%v", event.Kind, event.OrderID, err)
	}
}

func buildCartItems(items []order.Item) []CartItem {
	if len(items) == 0 {
		return nil
	}
	cart := make([]CartItem, 0, len(items))
	for _, item := range items {
		name := item.ProductName
		if item.AttributesText != "" {
			name = fmt.Sprintf("%s (%s)", name, item.AttributesText)
		}
		cart = append(cart, CartItem{
			Name:      name,
			Code:      item.ProductSKU,
			UnitPrice: ToMinorUnits(item.UnitPrice),
			Quantity:  strconv.Itoa(item.Quantity),
			Charge:    ToMinorUnits(item.Charge()),
		})
	}
	return cart
}

// handoverURL builds the redirect URL from a FormPost next action by raw
// string concatenation. Field values are intentionally NOT percent-encoded:
// the gateway signs and later validates the exact byte sequence it issued.
func handoverURL(created *CustomerOrder) string {
	if created == nil || created.NextAction == nil || created.NextAction.FormPost == nil {
		return ""
	}
	formPost := created.NextAction.FormPost
	if formPost.FormPostURL == "" || len(formPost.FormFields) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(formPost.FormFields))
	for _, field := range formPost.FormFields {
		pairs = append(pairs, fmt.Sprintf("%s=%s", field.Name, field.Value))
	}
	return fmt.Sprintf("%s?%s", formPost.FormPostURL, strings.Join(pairs, "&"))
}

// apiErrorMessage keeps gateway errors readable in result error lists while
// non-gateway failures pass through unchanged.
func apiErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
