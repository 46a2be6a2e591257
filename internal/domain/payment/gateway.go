package payment

import "context"

//go:generate mockgen -source gateway.go -destination mock_gateway.go -package payment

// API is the typed surface of the OpenPay merchant API. Implementations do
// not retry; retry policy belongs to the orchestration and task layers.
type API interface {
	GetOrderLimits(ctx context.Context) (*OrderLimits, error)
	GetOrderStatusByID(ctx context.Context, orderID string) (*CustomerOrderStatus, error)
	GetOrderStatusByRetailerID(ctx context.Context, retailerOrderID string) (*CustomerOrderStatus, error)
	CreateOrder(ctx context.Context, request *CreateOrderRequest) (*CustomerOrder, error)
	CaptureOrderByID(ctx context.Context, orderID string) (*Entity, error)
	CreateRefund(ctx context.Context, orderID string, request *CreateRefundRequest) (*Entity, error)
}

// APIFactory yields a configured API client for a settings snapshot.
// Clients are cached per (environment, region, token) so repeated calls with
// the same snapshot reuse the same transport.
type APIFactory interface {
	ClientFor(settings Settings) (API, error)
}

// Gateway order statuses the orchestration reacts to. Comparison is always
// case-insensitive.
const (
	OrderStatusPending = "Pending"
	PlanStatusLodged   = "Lodged"
)

// Entity is the common gateway response fragment carrying the gateway order id.
type Entity struct {
	OrderID string `json:"orderId"`
}

// OrderLimits is the allowed purchase price range in minor currency units.
type OrderLimits struct {
	MinPrice int64 `json:"minPrice"`
	MaxPrice int64 `json:"maxPrice"`
}

// CustomerOrderStatus is the authoritative order/plan state reported by the
// gateway.
type CustomerOrderStatus struct {
	Entity
	OrderStatus string `json:"orderStatus"`
	PlanStatus  string `json:"planStatus"`
}

// CustomerOrder is the response to order creation.
type CustomerOrder struct {
	Entity
	NextAction *NextAction `json:"nextAction"`
}

type NextAction struct {
	Type     string          `json:"type"` // "FormPost" or "WaitForCustomer"
	FormPost *FormPostAction `json:"formPost"`
}

type FormPostAction struct {
	FormPostURL string      `json:"formPostUrl"`
	FormFields  []FormField `json:"formFields"`
}

// FormField is a signed form field. Values must be forwarded byte for byte;
// the gateway validates the exact string it issued.
type FormField struct {
	Name  string `json:"fieldName"`
	Value string `json:"fieldValue"`
}

// CreateOrderRequest is the outbound order-creation payload. All prices are
// integers in minor currency units.
type CreateOrderRequest struct {
	CustomerJourney *CustomerJourney `json:"customerJourney"`
	PurchasePrice   int64            `json:"purchasePrice"`
	RetailerOrderNo string           `json:"retailerOrderNo"`
	Cart            []CartItem       `json:"cart,omitempty"`
}

type CartItem struct {
	Name      string `json:"itemName"`
	Code      string `json:"itemCode"`
	UnitPrice int64  `json:"itemRetailUnitPrice"`
	Quantity  string `json:"itemQty"`
	Charge    int64  `json:"itemRetailCharge"`
}

type CustomerJourney struct {
	Origin string                `json:"origin"`
	Online *OnlineJourneyDetails `json:"online"`
}

type OnlineJourneyDetails struct {
	CallbackURL      string           `json:"callbackUrl"`
	CancelURL        string           `json:"cancelUrl"`
	FailURL          string           `json:"failUrl"`
	PlanCreationType string           `json:"planCreationType"` // always "pending"
	DeliveryMethod   string           `json:"deliveryMethod"`   // "Delivery" or "Pickup"
	CustomerDetails  *PersonalDetails `json:"customerDetails"`
}

type PersonalDetails struct {
	FirstName       string           `json:"firstName"`
	FamilyName      string           `json:"familyName"`
	Email           string           `json:"email"`
	DeliveryAddress *CustomerAddress `json:"deliveryAddress"`
}

type CustomerAddress struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	PostCode string `json:"postCode"`
}

type CreateRefundRequest struct {
	FullRefund    bool  `json:"fullRefund"`
	ReducePriceBy int64 `json:"reducePriceBy,omitempty"`
}
