package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/donation-service/internal/config"
	"github.com/SergeyBogomolovv/donation-service/internal/entities"

	"github.com/razorpay/razorpay-go"
)

// Razorpay - клиент Orders API поверх официального SDK
type Razorpay struct {
	logger     *slog.Logger
	client     *razorpay.Client
	configured bool
}

func NewRazorpay(logger *slog.Logger, cfg config.Razorpay) *Razorpay {
	return &Razorpay{
		logger:     logger.With(slog.String("gateway", "razorpay")),
		client:     razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		configured: cfg.KeyID != "" && cfg.KeySecret != "",
	}
}

func (r *Razorpay) CreateOrder(ctx context.Context, params entities.OrderParams) (entities.Order, error) {
	if !r.configured {
		return entities.Order{}, entities.ErrGatewayNotConfigured
	}

	notes := make(map[string]any, len(params.Notes))
	for k, v := range params.Notes {
		notes[k] = v
	}

	data := map[string]any{
		"amount":          params.Amount,
		"currency":        params.Currency,
		"receipt":         params.Receipt,
		"payment_capture": 1,
		"notes":           notes,
	}

	res, err := r.call(ctx, func() (map[string]any, error) {
		return r.client.Order.Create(data, nil)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: create order: %w", entities.ErrGatewayUnavailable, err)
	}

	order := orderFromResponse(res)
	if order.ID == "" {
		return entities.Order{}, fmt.Errorf("%w: create order: response without id", entities.ErrGatewayUnavailable)
	}
	return order, nil
}

func (r *Razorpay) FetchOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if !r.configured {
		return entities.Order{}, entities.ErrGatewayNotConfigured
	}

	res, err := r.call(ctx, func() (map[string]any, error) {
		return r.client.Order.Fetch(orderID, nil, nil)
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: fetch order: %w", entities.ErrGatewayUnavailable, err)
	}

	order := orderFromResponse(res)
	if order.ID == "" {
		return entities.Order{}, fmt.Errorf("%w: fetch order: response without id", entities.ErrGatewayUnavailable)
	}
	return order, nil
}

type result struct {
	body map[string]any
	err  error
}

// call ограничивает блокирующий вызов SDK контекстом.
// SDK не принимает context, поэтому вызов идет в отдельной горутине.
func (r *Razorpay) call(ctx context.Context, fn func() (map[string]any, error)) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan result, 1)
	go func() {
		body, err := fn()
		done <- result{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		if res.body == nil {
			return nil, errors.New("empty response")
		}
		return res.body, nil
	}
}

func orderFromResponse(res map[string]any) entities.Order {
	order := entities.Order{
		ID:        stringField(res, "id"),
		Amount:    intField(res, "amount"),
		Currency:  stringField(res, "currency"),
		Receipt:   stringField(res, "receipt"),
		Status:    stringField(res, "status"),
		CreatedAt: intField(res, "created_at"),
	}

	// пустые notes шлюз отдает как [], а не {}
	if notes, ok := res["notes"].(map[string]any); ok && len(notes) > 0 {
		order.Notes = make(map[string]string, len(notes))
		for k, v := range notes {
			order.Notes[k] = fmt.Sprint(v)
		}
	}

	return order
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
