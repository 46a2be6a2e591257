package http

import (
	"fmt"
	"strings"
)

// Paths the gateway journey points back at. The callback path matches the
// route registered in SetUp; the storefront paths are owned by the host
// shop and only composed here.
const (
	CallbackPath     = "/openpay/callback/success"
	orderDetailsPath = "/orderdetails/%d"
)

// Routes implements payment.RouteURLBuilder on top of the public base URL
// this service is reachable at and the storefront base URL orders live on.
type Routes struct {
	serviceBaseURL    string
	storefrontBaseURL string
}

func NewRoutes(serviceBaseURL, storefrontBaseURL string) *Routes {
	return &Routes{
		serviceBaseURL:    strings.TrimRight(serviceBaseURL, "/"),
		storefrontBaseURL: strings.TrimRight(storefrontBaseURL, "/"),
	}
}

func (r *Routes) CallbackURL() string {
	return r.serviceBaseURL + CallbackPath
}

func (r *Routes) OrderDetailsURL(orderID int64) string {
	return r.storefrontBaseURL + fmt.Sprintf(orderDetailsPath, orderID)
}

func (r *Routes) HomeURL() string {
	return r.storefrontBaseURL + "/"
}
