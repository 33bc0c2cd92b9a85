package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/config"
	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/donation-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/donation-service/internal/service"
	servicemocks "github.com/SergeyBogomolovv/donation-service/internal/service/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var checkout = handler.NewCheckoutConfig("rzp_test_key", config.Checkout{
	Name:          "GullyStray Care",
	Description:   "Thank you for your contribution",
	ThemeColor:    "#F37254",
	Currency:      "INR",
	PresetAmounts: []int{100, 500, 1000, 2500, 5000},
	DefaultAmount: 500,
	Methods:       []string{"card", "upi"},
	ModalEscape:   true,
})

func newRouter(orders *mocks.MockOrderCreator, verifier *mocks.MockPaymentVerifier) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, verifier, checkout)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(b)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	createdOrder := entities.Order{
		ID:        "order_1",
		Amount:    50000,
		Currency:  "INR",
		Receipt:   "receipt_1",
		Status:    "created",
		CreatedAt: 1700000000,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderCreator)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"amount":500,"receipt":"receipt_1","notes":{"donor_name":"Asha"}}`,
			mockBehavior: func(svc *mocks.MockOrderCreator) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(req entities.DonationRequest) bool {
						return req.Amount.Equal(decimal.NewFromInt(500)) &&
							req.Receipt == "receipt_1" &&
							req.Notes["donor_name"] == "Asha"
					})).
					Return(createdOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"order_1"`,
		},
		{
			name: "amount as string",
			body: `{"amount":"10.555","receipt":"receipt_1"}`,
			mockBehavior: func(svc *mocks.MockOrderCreator) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(req entities.DonationRequest) bool {
						return req.Amount.Equal(decimal.RequireFromString("10.555"))
					})).
					Return(createdOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "non numeric amount",
			body: `{"amount":"abc","receipt":"receipt_1"}`,
			mockBehavior: func(svc *mocks.MockOrderCreator) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(req entities.DonationRequest) bool {
						return req.Amount.IsZero()
					})).
					Return(entities.Order{}, entities.ErrInvalidAmount).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"Valid amount is required"`,
		},
		{
			name: "missing receipt",
			body: `{"amount":500}`,
			mockBehavior: func(svc *mocks.MockOrderCreator) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrReceiptRequired).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"Receipt ID is required"`,
		},
		{
			name:         "receipt too long",
			body:         fmt.Sprintf(`{"amount":500,"receipt":"%s"}`, strings.Repeat("r", 41)),
			mockBehavior: func(_ *mocks.MockOrderCreator) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Receipt":"max"`,
		},
		{
			name:         "invalid currency",
			body:         `{"amount":500,"receipt":"receipt_1","currency":"RUPEE"}`,
			mockBehavior: func(_ *mocks.MockOrderCreator) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Currency":"iso4217"`,
		},
		{
			name:         "malformed json",
			body:         `{"amount":`,
			mockBehavior: func(_ *mocks.MockOrderCreator) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"success":false`,
		},
		{
			name: "gateway not configured",
			body: `{"amount":500,"receipt":"receipt_1"}`,
			mockBehavior: func(svc *mocks.MockOrderCreator) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrGatewayNotConfigured).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"Payment gateway is not configured"`,
		},
		{
			name: "gateway failure",
			body: `{"amount":500,"receipt":"receipt_1"}`,
			mockBehavior: func(svc *mocks.MockOrderCreator) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: timeout", entities.ErrGatewayUnavailable)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"Failed to create order"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderCreator(t)
			verifier := mocks.NewMockPaymentVerifier(t)
			tc.mockBehavior(orders)

			status, body := doRequest(t, newRouter(orders, verifier), http.MethodPost, "/api/create-razorpay-order", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.CreateOrderResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, int64(50000), resp.Order.Amount)
				assert.Equal(t, "INR", resp.Order.Currency)
			}
		})
	}
}

func TestHTTPHandler_CreateOrder_AmountBounds(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantAmount int64
	}{
		{
			name:       "maximum amount",
			body:       `{"amount":1000000000,"receipt":"receipt_1"}`,
			wantStatus: http.StatusOK,
			wantAmount: 100000000000,
		},
		{
			name:       "amount overflowing paise",
			body:       `{"amount":184467440737095516.17,"receipt":"receipt_1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "huge exponent",
			body:       `{"amount":"1e20000000","receipt":"receipt_1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "tiny exponent",
			body:       `{"amount":"1e-20000000","receipt":"receipt_1"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			gw := servicemocks.NewMockGateway(t)
			if tc.wantStatus == http.StatusOK {
				gw.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(p entities.OrderParams) bool {
						return p.Amount == tc.wantAmount
					})).
					RunAndReturn(func(_ context.Context, p entities.OrderParams) (entities.Order, error) {
						return entities.Order{ID: "order_1", Amount: p.Amount, Currency: p.Currency}, nil
					}).Once()
			}

			h := handler.NewHTTPHandler(logger, service.NewOrderService(logger, gw, time.Second),
				mocks.NewMockPaymentVerifier(t), checkout)
			r := chi.NewRouter()
			h.Init(r)

			start := time.Now()
			status, body := doRequest(t, r, http.MethodPost, "/api/create-razorpay-order", tc.body)

			assert.Less(t, time.Since(start), time.Second)
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantStatus != http.StatusOK {
				assert.Contains(t, body, `"error":"Valid amount is required"`)
			}
		})
	}
}

func TestHTTPHandler_VerifyPayment(t *testing.T) {
	validBody := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig"}`
	cb := entities.PaymentCallback{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockPaymentVerifier)
		wantStatus   int
		wantResp     handler.VerifyPaymentResponse
	}{
		{
			name: "verified",
			body: validBody,
			mockBehavior: func(svc *mocks.MockPaymentVerifier) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, cb).
					Return(entities.VerificationResult{Verified: true, Message: "Payment verified successfully"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantResp:   handler.VerifyPaymentResponse{Success: true, Verified: true, Message: "Payment verified successfully"},
		},
		{
			name: "signature mismatch",
			body: validBody,
			mockBehavior: func(svc *mocks.MockPaymentVerifier) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, cb).
					Return(entities.VerificationResult{Verified: false, Message: "Payment verification failed"}, nil).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantResp:   handler.VerifyPaymentResponse{Message: "Payment verification failed"},
		},
		{
			name: "missing fields",
			body: `{"razorpay_order_id":"order_1"}`,
			mockBehavior: func(svc *mocks.MockPaymentVerifier) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, entities.PaymentCallback{OrderID: "order_1"}).
					Return(entities.VerificationResult{}, entities.ErrMissingVerificationFields).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantResp:   handler.VerifyPaymentResponse{Error: "Missing required payment verification fields"},
		},
		{
			name:         "malformed json",
			body:         `not json`,
			mockBehavior: func(_ *mocks.MockPaymentVerifier) {},
			wantStatus:   http.StatusBadRequest,
			wantResp:     handler.VerifyPaymentResponse{Error: "Missing required payment verification fields"},
		},
		{
			name: "secret not configured",
			body: validBody,
			mockBehavior: func(svc *mocks.MockPaymentVerifier) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, cb).
					Return(entities.VerificationResult{}, entities.ErrGatewayNotConfigured).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantResp:   handler.VerifyPaymentResponse{Error: "Payment gateway is not configured"},
		},
		{
			name: "unexpected error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockPaymentVerifier) {
				svc.EXPECT().
					VerifyPayment(mock.Anything, cb).
					Return(entities.VerificationResult{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantResp:   handler.VerifyPaymentResponse{Error: "Payment verification failed"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderCreator(t)
			verifier := mocks.NewMockPaymentVerifier(t)
			tc.mockBehavior(verifier)

			status, body := doRequest(t, newRouter(orders, verifier), http.MethodPost, "/api/verify-razorpay-payment", tc.body)

			assert.Equal(t, tc.wantStatus, status)

			var resp handler.VerifyPaymentResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, tc.wantResp, resp)
			assert.Contains(t, body, `"verified":`)
		})
	}
}

func TestHTTPHandler_Methods(t *testing.T) {
	r := newRouter(mocks.NewMockOrderCreator(t), mocks.NewMockPaymentVerifier(t))

	for _, path := range []string{"/api/create-razorpay-order", "/api/verify-razorpay-payment"} {
		t.Run("GET "+path, func(t *testing.T) {
			status, body := doRequest(t, r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusMethodNotAllowed, status)
			assert.JSONEq(t, `{"success":false,"error":"Method not allowed"}`, body)
		})

		t.Run("OPTIONS "+path, func(t *testing.T) {
			status, body := doRequest(t, r, http.MethodOptions, path, "")
			assert.Equal(t, http.StatusOK, status)
			assert.Empty(t, body)
		})
	}
}

func TestHTTPHandler_CheckoutConfig(t *testing.T) {
	r := newRouter(mocks.NewMockOrderCreator(t), mocks.NewMockPaymentVerifier(t))

	status, body := doRequest(t, r, http.MethodGet, "/api/checkout-config", "")

	assert.Equal(t, http.StatusOK, status)

	var resp handler.CheckoutConfig
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "rzp_test_key", resp.Key)
	assert.Equal(t, "#F37254", resp.ThemeColor)
	assert.Equal(t, []int{100, 500, 1000, 2500, 5000}, resp.PresetAmounts)
	assert.Equal(t, handler.Methods{Card: true, UPI: true}, resp.Methods)
	assert.Equal(t, handler.CheckoutModal{Escape: true}, resp.Modal)
	assert.NotContains(t, body, "secret")
}

func TestHTTPHandler_ThankYou(t *testing.T) {
	r := newRouter(mocks.NewMockOrderCreator(t), mocks.NewMockPaymentVerifier(t))

	status, body := doRequest(t, r, http.MethodGet, "/thank-you?name=Asha&amount=500&payment_id=pay_1&order_id=order_1", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Thank You, Asha!")
	assert.Contains(t, body, "pay_1")
	assert.Contains(t, body, "order_1")
}
