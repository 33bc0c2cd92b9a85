package gateway_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/config"
	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/internal/gateway"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiURL = "https://api.razorpay.com"

var testCreds = config.Razorpay{KeyID: "rzp_test_key", KeySecret: "rzp_test_secret", Timeout: time.Second}

func newGateway(cfg config.Razorpay) *gateway.Razorpay {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.NewRazorpay(logger, cfg)
}

// captureBody сохраняет тело запроса к шлюзу для проверки
func captureBody(dst *map[string]any) gock.MatchFunc {
	return func(req *http.Request, _ *gock.Request) (bool, error) {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			return false, err
		}
		req.Body = io.NopCloser(bytes.NewReader(raw))
		return true, json.Unmarshal(raw, dst)
	}
}

func TestRazorpay_CreateOrder(t *testing.T) {
	params := entities.OrderParams{
		Amount:   50000,
		Currency: "INR",
		Receipt:  "receipt_1700000000000_abc",
		Notes:    map[string]string{"donor_name": "Asha"},
	}

	testCases := []struct {
		name     string
		creds    config.Razorpay
		mock     func(body *map[string]any)
		want     entities.Order
		wantErr  error
		wantBody map[string]any
	}{
		{
			name:  "success",
			creds: testCreds,
			mock: func(body *map[string]any) {
				gock.New(apiURL).
					Post("/v1/orders").
					MatchHeader("Authorization", "^Basic ").
					AddMatcher(captureBody(body)).
					Reply(200).
					JSON(map[string]any{
						"id":         "order_IluGWxBm9U8zJ8",
						"entity":     "order",
						"amount":     50000,
						"currency":   "INR",
						"receipt":    "receipt_1700000000000_abc",
						"status":     "created",
						"created_at": 1700000000,
						"notes":      map[string]any{"donor_name": "Asha"},
					})
			},
			want: entities.Order{
				ID:        "order_IluGWxBm9U8zJ8",
				Amount:    50000,
				Currency:  "INR",
				Receipt:   "receipt_1700000000000_abc",
				Status:    "created",
				CreatedAt: 1700000000,
				Notes:     map[string]string{"donor_name": "Asha"},
			},
			wantBody: map[string]any{
				"amount":          float64(50000),
				"currency":        "INR",
				"receipt":         "receipt_1700000000000_abc",
				"payment_capture": float64(1),
				"notes":           map[string]any{"donor_name": "Asha"},
			},
		},
		{
			name:  "upstream rejects request",
			creds: testCreds,
			mock: func(_ *map[string]any) {
				gock.New(apiURL).
					Post("/v1/orders").
					Reply(400).
					JSON(map[string]any{
						"error": map[string]any{
							"code":        "BAD_REQUEST_ERROR",
							"description": "Authentication failed",
						},
					})
			},
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:  "upstream too slow",
			creds: testCreds,
			mock: func(_ *map[string]any) {
				gock.New(apiURL).
					Post("/v1/orders").
					Reply(200).
					Delay(500 * time.Millisecond).
					JSON(map[string]any{"id": "order_late"})
			},
			wantErr: entities.ErrGatewayUnavailable,
		},
		{
			name:    "credentials missing",
			creds:   config.Razorpay{Timeout: time.Second},
			mock:    func(_ *map[string]any) {},
			wantErr: entities.ErrGatewayNotConfigured,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer gock.Off()

			var body map[string]any
			tc.mock(&body)

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			got, err := newGateway(tc.creds).CreateOrder(ctx, params)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantBody, body)
			assert.True(t, gock.IsDone())
		})
	}
}

func TestRazorpay_FetchOrder(t *testing.T) {
	defer gock.Off()

	gock.New(apiURL).
		Get("/v1/orders/order_1").
		Reply(200).
		JSON(map[string]any{
			"id":         "order_1",
			"amount":     25000,
			"currency":   "INR",
			"receipt":    "receipt_1",
			"status":     "paid",
			"created_at": 1700000000,
			"notes":      []any{},
		})

	got, err := newGateway(testCreds).FetchOrder(context.Background(), "order_1")

	require.NoError(t, err)
	assert.Equal(t, entities.Order{
		ID:        "order_1",
		Amount:    25000,
		Currency:  "INR",
		Receipt:   "receipt_1",
		Status:    "paid",
		CreatedAt: 1700000000,
	}, got)
	assert.True(t, gock.IsDone())
}
