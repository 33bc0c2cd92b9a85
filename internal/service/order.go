package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/go-playground/validator/v10"
)

type Gateway interface {
	CreateOrder(ctx context.Context, params entities.OrderParams) (entities.Order, error)
}

type orderService struct {
	logger   *slog.Logger
	gateway  Gateway
	timeout  time.Duration
	validate *validator.Validate
}

func NewOrderService(logger *slog.Logger, gateway Gateway, timeout time.Duration) *orderService {
	return &orderService{
		logger:   logger.With(slog.String("service", "order")),
		gateway:  gateway,
		timeout:  timeout,
		validate: validator.New(),
	}
}

// CreateOrder заводит заказ в шлюзе. Дедупликации по receipt нет:
// одинаковые receipt дают разные заказы.
func (s *orderService) CreateOrder(ctx context.Context, req entities.DonationRequest) (entities.Order, error) {
	if !req.Amount.IsPositive() {
		return entities.Order{}, entities.ErrInvalidAmount
	}
	amount, err := entities.ToMinorUnits(req.Amount)
	if err != nil {
		return entities.Order{}, err
	}

	receipt := strings.TrimSpace(req.Receipt)
	if receipt == "" {
		return entities.Order{}, entities.ErrReceiptRequired
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	if s.validate.Var(currency, "iso4217") != nil {
		return entities.Order{}, entities.ErrInvalidCurrency
	}

	if len(req.Notes) > entities.MaxNotes {
		return entities.Order{}, entities.ErrTooManyNotes
	}

	params := entities.OrderParams{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    req.Notes,
	}
	if params.Notes == nil {
		params.Notes = map[string]string{}
	}

	// меньше одной пайсы после округления
	if params.Amount <= 0 {
		return entities.Order{}, entities.ErrInvalidAmount
	}

	s.logger.DebugContext(ctx, "creating gateway order", orderAttrs(params)...)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	order, err := s.gateway.CreateOrder(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create gateway order",
			append(orderAttrs(params), slog.Any("error", err))...)
		return entities.Order{}, fmt.Errorf("failed to create gateway order: %w", err)
	}

	s.logger.InfoContext(ctx, "gateway order created",
		slog.String("order_id", order.ID),
		slog.String("receipt", order.Receipt),
		slog.Int64("amount", order.Amount),
	)
	return order, nil
}

func orderAttrs(p entities.OrderParams) []any {
	return []any{
		slog.Int64("amount", p.Amount),
		slog.String("currency", p.Currency),
		slog.String("receipt", p.Receipt),
		slog.Any("notes", p.Notes),
	}
}
