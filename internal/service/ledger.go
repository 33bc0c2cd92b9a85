package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/pkg/trm"
	"github.com/SergeyBogomolovv/donation-service/pkg/utils"
)

const fetchOrderTimeout = 10 * time.Second

type LedgerRepo interface {
	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveDonation(ctx context.Context, d entities.Donation) error
	SaveNotes(ctx context.Context, paymentID string, notes map[string]string) error
}

type OrderFetcher interface {
	FetchOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type ledgerService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      LedgerRepo
	orders    OrderFetcher
}

func NewLedgerService(logger *slog.Logger, txManager trm.Manager, repo LedgerRepo, orders OrderFetcher) *ledgerService {
	return &ledgerService{
		logger:    logger.With(slog.String("service", "ledger")),
		txManager: txManager,
		repo:      repo,
		orders:    orders,
	}
}

// RecordPayment сохраняет подтвержденный платеж в журнал.
// Сумма и заметки берутся из заказа в шлюзе; если шлюз недоступен,
// пишем хотя бы идентификаторы.
func (s *ledgerService) RecordPayment(ctx context.Context, p entities.VerifiedPayment) error {
	donation := s.buildDonation(ctx, p)

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveDonation(ctx, donation); err != nil {
				return fmt.Errorf("failed to save donation: %w", err)
			}
			if err := s.repo.SaveNotes(ctx, donation.PaymentID, donation.Notes); err != nil {
				return fmt.Errorf("failed to save notes: %w", err)
			}

			s.logger.Debug("donation saved", "payment_id", donation.PaymentID)
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	return utils.Retry(ctx, cfg, fn)
}

func (s *ledgerService) buildDonation(ctx context.Context, p entities.VerifiedPayment) entities.Donation {
	donation := entities.Donation{
		PaymentID:  p.PaymentID,
		OrderID:    p.OrderID,
		VerifiedAt: p.VerifiedAt,
	}

	ctx, cancel := context.WithTimeout(ctx, fetchOrderTimeout)
	defer cancel()

	order, err := s.orders.FetchOrder(ctx, p.OrderID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to fetch order details",
			slog.String("order_id", p.OrderID),
			slog.Any("error", err),
		)
		return donation
	}

	donation.Amount = order.Amount
	donation.Currency = order.Currency
	donation.Receipt = order.Receipt
	donation.Notes = order.Notes
	return donation
}
