package openpay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"openpay-gateway/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	region := payment.Region{APIURL: server.URL}
	return NewClient(region, "merchant|s3cret|extra", server.Client())
}

func TestClient_Headers(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		// only the first separator splits user from password
		auth := r.Header.Get("Authorization")
		require.True(t, strings.HasPrefix(auth, "Basic "))
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(auth, "Basic "))
		require.NoError(t, err)
		assert.Equal(t, "merchant:s3cret|extra", string(decoded))

		assert.Equal(t, "1.20201120", r.Header.Get("openpay-version"))
		assert.Equal(t, "*/*", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		_ = json.NewEncoder(w).Encode(payment.OrderLimits{MinPrice: 5000, MaxPrice: 100000})
	})

	limits, err := client.GetOrderLimits(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &payment.OrderLimits{MinPrice: 5000, MaxPrice: 100000}, limits)
}

func TestClient_Routes(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(payment.Entity{OrderID: "OP-1"})
	})
	ctx := context.Background()

	testCases := []struct {
		name           string
		call           func() error
		expectedMethod string
		expectedPath   string
	}{
		{
			name:           "order limits",
			call:           func() error { _, err := client.GetOrderLimits(ctx); return err },
			expectedMethod: http.MethodGet,
			expectedPath:   "/v1/merchant/orders/limits",
		},
		{
			name:           "order by id",
			call:           func() error { _, err := client.GetOrderStatusByID(ctx, "OP-1"); return err },
			expectedMethod: http.MethodGet,
			expectedPath:   "/v1/merchant/orders/OP-1",
		},
		{
			name:           "order by retailer id",
			call:           func() error { _, err := client.GetOrderStatusByRetailerID(ctx, "42"); return err },
			expectedMethod: http.MethodGet,
			expectedPath:   "/v1/merchant/orders/retailer/42",
		},
		{
			name:           "create order",
			call:           func() error { _, err := client.CreateOrder(ctx, &payment.CreateOrderRequest{}); return err },
			expectedMethod: http.MethodPost,
			expectedPath:   "/v1/merchant/orders",
		},
		{
			name:           "capture",
			call:           func() error { _, err := client.CaptureOrderByID(ctx, "OP-1"); return err },
			expectedMethod: http.MethodPost,
			expectedPath:   "/v1/merchant/orders/OP-1/capture",
		},
		{
			name:           "refund",
			call:           func() error { _, err := client.CreateRefund(ctx, "OP-1", &payment.CreateRefundRequest{FullRefund: true}); return err },
			expectedMethod: http.MethodPost,
			expectedPath:   "/v1/merchant/orders/OP-1/refund",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.call())
			assert.Equal(t, tc.expectedMethod, gotMethod)
			assert.Equal(t, tc.expectedPath, gotPath)
		})
	}
}

func TestClient_CreateOrder_WirePayload(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(payment.CustomerOrder{Entity: payment.Entity{OrderID: "OP-1"}})
	})

	_, err := client.CreateOrder(context.Background(), &payment.CreateOrderRequest{
		PurchasePrice:   14990,
		RetailerOrderNo: "42",
		Cart: []payment.CartItem{
			{Name: "Sneakers", Code: "SNK-1", UnitPrice: 7495, Quantity: "2", Charge: 14990},
		},
		CustomerJourney: &payment.CustomerJourney{Origin: "Online"},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(14990), gotBody["purchasePrice"])
	assert.Equal(t, "42", gotBody["retailerOrderNo"])

	cart, ok := gotBody["cart"].([]any)
	require.True(t, ok)
	require.Len(t, cart, 1)
	item := cart[0].(map[string]any)
	assert.Equal(t, "Sneakers", item["itemName"])
	assert.Equal(t, "2", item["itemQty"]) // quantity is a string on the wire
	assert.Equal(t, float64(14990), item["itemRetailCharge"])
}

func TestClient_ProblemResponse(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(payment.APIProblem{
			Type:   "https://openpay.com.au/problems/order-invalid",
			Title:  "Order invalid",
			Status: 422,
			Detail: "purchase price outside limits",
		})
	})

	_, err := client.CreateOrder(context.Background(), &payment.CreateOrderRequest{})

	var apiErr *payment.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "CreateOrder", apiErr.Operation)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	require.NotNil(t, apiErr.Problem)
	assert.Equal(t, "Order invalid", apiErr.Problem.Title)
	assert.Contains(t, err.Error(), "error when calling 'CreateOrder', HTTP status code - 422")
	assert.Contains(t, err.Error(), "purchase price outside limits")
}

func TestClient_NonProblemErrorBody(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusInternalServerError)
	})

	_, err := client.GetOrderLimits(context.Background())

	var apiErr *payment.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Nil(t, apiErr.Problem)
}

func TestClient_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	region := payment.Region{APIURL: server.URL}
	client := NewClient(region, "merchant|s3cret", server.Client())
	server.Close() // connection refused from here on

	_, err := client.GetOrderStatusByID(context.Background(), "OP-1")

	var apiErr *payment.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Error(t, errors.Unwrap(apiErr))
}

func TestFactory_CachesClientsByCredentials(t *testing.T) {
	t.Parallel()

	factory := NewFactory(nil)

	base := payment.Settings{
		UseSandbox:             true,
		APIToken:               "merchant|s3cret",
		RegionTwoLetterISOCode: "AU",
	}

	first, err := factory.ClientFor(base)
	require.NoError(t, err)
	second, err := factory.ClientFor(base)
	require.NoError(t, err)
	assert.Same(t, first, second)

	otherToken := base
	otherToken.APIToken = "merchant|other"
	third, err := factory.ClientFor(otherToken)
	require.NoError(t, err)
	assert.NotSame(t, first, third)

	live := base
	live.UseSandbox = false
	fourth, err := factory.ClientFor(live)
	require.NoError(t, err)
	assert.NotSame(t, first, fourth)
}

func TestFactory_UnknownRegion(t *testing.T) {
	t.Parallel()

	factory := NewFactory(nil)

	_, err := factory.ClientFor(payment.Settings{
		UseSandbox:             true,
		APIToken:               "merchant|s3cret",
		RegionTwoLetterISOCode: "US",
	})

	assert.Error(t, err)
}
