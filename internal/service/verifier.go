package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/pkg/signature"
)

const (
	msgVerified    = "Payment verified successfully"
	msgNotVerified = "Payment verification failed"
)

// PaymentRecorder - точка расширения для журнала подтвержденных платежей
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, p entities.VerifiedPayment) error
}

// SeenCache помнит уже записанные платежи
type SeenCache interface {
	Add(key string, value time.Time) bool
	Delete(key string)
}

type verifier struct {
	logger   *slog.Logger
	secret   string
	recorder PaymentRecorder
	seen     SeenCache
	now      func() time.Time
}

func NewVerifier(logger *slog.Logger, secret string, recorder PaymentRecorder, seen SeenCache) *verifier {
	return &verifier{
		logger:   logger.With(slog.String("service", "verifier")),
		secret:   secret,
		recorder: recorder,
		seen:     seen,
		now:      time.Now,
	}
}

// VerifyPayment проверяет подпись колбэка шлюза.
// Несовпадение подписи - это результат, а не ошибка.
func (v *verifier) VerifyPayment(ctx context.Context, cb entities.PaymentCallback) (entities.VerificationResult, error) {
	if !cb.Complete() {
		return entities.VerificationResult{}, entities.ErrMissingVerificationFields
	}
	if v.secret == "" {
		return entities.VerificationResult{}, entities.ErrGatewayNotConfigured
	}

	log := v.logger.With(
		slog.String("order_id", cb.OrderID),
		slog.String("payment_id", cb.PaymentID),
	)

	if !signature.Verify(v.secret, cb.OrderID, cb.PaymentID, cb.Signature) {
		log.WarnContext(ctx, "payment signature mismatch")
		return entities.VerificationResult{Verified: false, Message: msgNotVerified}, nil
	}

	log.InfoContext(ctx, "payment verified")
	v.record(ctx, log, entities.VerifiedPayment{
		OrderID:    cb.OrderID,
		PaymentID:  cb.PaymentID,
		VerifiedAt: v.now().UTC(),
	})

	return entities.VerificationResult{Verified: true, Message: msgVerified}, nil
}

// record передает платеж в журнал не больше одного раза.
// Ошибка журнала не меняет результат проверки.
func (v *verifier) record(ctx context.Context, log *slog.Logger, p entities.VerifiedPayment) {
	if !v.seen.Add(p.PaymentID, p.VerifiedAt) {
		log.DebugContext(ctx, "payment already recorded")
		return
	}

	if err := v.recorder.RecordPayment(ctx, p); err != nil {
		v.seen.Delete(p.PaymentID)
		log.ErrorContext(ctx, "failed to record verified payment", slog.Any("error", err))
	}
}

type logRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder - журнал по умолчанию, когда ни Kafka, ни Postgres не настроены
func NewLogRecorder(logger *slog.Logger) *logRecorder {
	return &logRecorder{logger: logger.With(slog.String("recorder", "log"))}
}

func (r *logRecorder) RecordPayment(ctx context.Context, p entities.VerifiedPayment) error {
	r.logger.InfoContext(ctx, "donation verified",
		slog.String("order_id", p.OrderID),
		slog.String("payment_id", p.PaymentID),
		slog.Time("verified_at", p.VerifiedAt),
	)
	return nil
}
