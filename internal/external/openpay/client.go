package openpay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/pkg/metrics"
)

const (
	apiVersion     = "1.20201120"
	userAgent      = "openpay-gateway"
	defaultTimeout = 20 * time.Second
)

// Client talks to one OpenPay merchant API endpoint with one credential.
// Both are fixed at construction; a settings change produces a new client
// through the factory.
type Client struct {
	baseURL    string
	authHeader string
	http       *http.Client
}

func NewClient(region payment.Region, apiToken string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(region.APIURL, "/"),
		authHeader: "Basic " + encodeToken(apiToken),
		http:       httpClient,
	}
}

// encodeToken turns the merchant api token into basic-auth credentials.
// The token is issued as "<user>|<password>"; only the first separator
// splits, the password may contain more of them.
func encodeToken(apiToken string) string {
	credentials := strings.Replace(apiToken, "|", ":", 1)
	return base64.StdEncoding.EncodeToString([]byte(credentials))
}

func (c *Client) GetOrderLimits(ctx context.Context) (*payment.OrderLimits, error) {
	var out payment.OrderLimits
	if err := c.call(ctx, "GetOrderLimits", http.MethodGet, "/v1/merchant/orders/limits", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrderStatusByID(ctx context.Context, orderID string) (*payment.CustomerOrderStatus, error) {
	var out payment.CustomerOrderStatus
	path := "/v1/merchant/orders/" + orderID
	if err := c.call(ctx, "GetOrderByID", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrderStatusByRetailerID(ctx context.Context, retailerOrderID string) (*payment.CustomerOrderStatus, error) {
	var out payment.CustomerOrderStatus
	path := "/v1/merchant/orders/retailer/" + retailerOrderID
	if err := c.call(ctx, "GetOrderByRetailerID", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, request *payment.CreateOrderRequest) (*payment.CustomerOrder, error) {
	if request == nil {
		return nil, fmt.Errorf("create order: nil request")
	}
	var out payment.CustomerOrder
	if err := c.call(ctx, "CreateOrder", http.MethodPost, "/v1/merchant/orders", request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CaptureOrderByID(ctx context.Context, orderID string) (*payment.Entity, error) {
	if orderID == "" {
		return nil, fmt.Errorf("capture order: empty order id")
	}
	var out payment.Entity
	path := "/v1/merchant/orders/" + orderID + "/capture"
	if err := c.call(ctx, "CaptureOrder", http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRefund(ctx context.Context, orderID string, request *payment.CreateRefundRequest) (*payment.Entity, error) {
	if orderID == "" {
		return nil, fmt.Errorf("create refund: empty order id")
	}
	if request == nil {
		return nil, fmt.Errorf("create refund: nil request")
	}
	var out payment.Entity
	path := "/v1/merchant/orders/" + orderID + "/refund"
	if err := c.call(ctx, "CreateRefund", http.MethodPost, path, request, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, operation, method, path string, body, out any) error {
	started := time.Now()
	statusCode, err := c.do(ctx, operation, method, path, body, out)
	metrics.ObserveGatewayCall(operation, statusCode, time.Since(started))
	return err
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payloadJSON, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payloadJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("openpay-version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// transport failures surface as a status 500 gateway error so the
		// orchestration handles them exactly like HTTP errors
		return http.StatusInternalServerError, &payment.APIError{
			Operation:  operation,
			StatusCode: http.StatusInternalServerError,
			Err:        err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &payment.APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("read response: %w", err),
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &payment.APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
		}
		var problem payment.APIProblem
		if json.Unmarshal(raw, &problem) == nil && problem.Title != "" {
			apiErr.Problem = &problem
		}
		return resp.StatusCode, apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s response: %w", operation, err)
		}
	}
	return resp.StatusCode, nil
}
