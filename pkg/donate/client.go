package donate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	createOrderPath    = "/api/create-razorpay-order"
	verifyPaymentPath  = "/api/verify-razorpay-payment"
	checkoutConfigPath = "/api/checkout-config"
)

// APIError - ответ сервера с ошибкой
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client ходит в API пожертвований
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	Success  bool   `json:"success"`
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
	Error    string `json:"error"`
	Order    Order  `json:"order"`
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	var res apiResponse
	code, err := c.do(ctx, http.MethodPost, createOrderPath, req, &res)
	if err != nil {
		return Order{}, err
	}
	if code != http.StatusOK || !res.Success {
		return Order{}, &APIError{StatusCode: code, Message: res.Error}
	}
	return res.Order, nil
}

// VerifyPayment отправляет колбэк на проверку подписи.
// Несовпадение подписи возвращается как Verification{Verified: false}, без ошибки.
func (c *Client) VerifyPayment(ctx context.Context, p PaymentResult) (Verification, error) {
	var res apiResponse
	code, err := c.do(ctx, http.MethodPost, verifyPaymentPath, p, &res)
	if err != nil {
		return Verification{}, err
	}
	if res.Error != "" {
		return Verification{}, &APIError{StatusCode: code, Message: res.Error}
	}
	if code != http.StatusOK && code != http.StatusBadRequest {
		return Verification{}, &APIError{StatusCode: code, Message: http.StatusText(code)}
	}
	return Verification{Verified: res.Success && res.Verified, Message: res.Message}, nil
}

func (c *Client) CheckoutConfig(ctx context.Context) (Settings, error) {
	var s Settings
	code, err := c.do(ctx, http.MethodGet, checkoutConfigPath, nil, &s)
	if err != nil {
		return Settings{}, err
	}
	if code != http.StatusOK {
		return Settings{}, &APIError{StatusCode: code, Message: http.StatusText(code)}
	}
	return s, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}
