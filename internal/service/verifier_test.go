package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/SergeyBogomolovv/donation-service/internal/service"
	mocks "github.com/SergeyBogomolovv/donation-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/donation-service/pkg/cache"
	"github.com/SergeyBogomolovv/donation-service/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "rzp_test_secret"

func validCallback() entities.PaymentCallback {
	return entities.PaymentCallback{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signature.Sign(testSecret, "order_1", "pay_1"),
	}
}

func TestVerifier_VerifyPayment(t *testing.T) {
	type MockBehavior func(recorder *mocks.MockPaymentRecorder)

	tampered := validCallback()
	tampered.Signature = "0" + tampered.Signature[1:]
	if tampered.Signature == validCallback().Signature {
		tampered.Signature = "1" + tampered.Signature[1:]
	}

	testCases := []struct {
		name         string
		secret       string
		cb           entities.PaymentCallback
		mockBehavior MockBehavior
		want         entities.VerificationResult
		wantErr      error
	}{
		{
			name:   "valid signature",
			secret: testSecret,
			cb:     validCallback(),
			mockBehavior: func(recorder *mocks.MockPaymentRecorder) {
				recorder.EXPECT().
					RecordPayment(mock.Anything, mock.MatchedBy(func(p entities.VerifiedPayment) bool {
						return p.OrderID == "order_1" && p.PaymentID == "pay_1" && !p.VerifiedAt.IsZero()
					})).
					Return(nil).Once()
			},
			want: entities.VerificationResult{Verified: true, Message: "Payment verified successfully"},
		},
		{
			name:         "tampered signature",
			secret:       testSecret,
			cb:           tampered,
			mockBehavior: func(_ *mocks.MockPaymentRecorder) {},
			want:         entities.VerificationResult{Verified: false, Message: "Payment verification failed"},
		},
		{
			name:         "signed with another secret",
			secret:       "another_secret",
			cb:           validCallback(),
			mockBehavior: func(_ *mocks.MockPaymentRecorder) {},
			want:         entities.VerificationResult{Verified: false, Message: "Payment verification failed"},
		},
		{
			name:   "recorder failure does not change result",
			secret: testSecret,
			cb:     validCallback(),
			mockBehavior: func(recorder *mocks.MockPaymentRecorder) {
				recorder.EXPECT().
					RecordPayment(mock.Anything, mock.Anything).
					Return(errors.New("kafka down")).Once()
			},
			want: entities.VerificationResult{Verified: true, Message: "Payment verified successfully"},
		},
		{
			name:         "missing order id",
			secret:       testSecret,
			cb:           entities.PaymentCallback{PaymentID: "pay_1", Signature: "sig"},
			mockBehavior: func(_ *mocks.MockPaymentRecorder) {},
			wantErr:      entities.ErrMissingVerificationFields,
		},
		{
			name:         "missing payment id",
			secret:       testSecret,
			cb:           entities.PaymentCallback{OrderID: "order_1", Signature: "sig"},
			mockBehavior: func(_ *mocks.MockPaymentRecorder) {},
			wantErr:      entities.ErrMissingVerificationFields,
		},
		{
			name:         "missing signature",
			secret:       testSecret,
			cb:           entities.PaymentCallback{OrderID: "order_1", PaymentID: "pay_1"},
			mockBehavior: func(_ *mocks.MockPaymentRecorder) {},
			wantErr:      entities.ErrMissingVerificationFields,
		},
		{
			name:         "secret not configured",
			secret:       "",
			cb:           validCallback(),
			mockBehavior: func(_ *mocks.MockPaymentRecorder) {},
			wantErr:      entities.ErrGatewayNotConfigured,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := mocks.NewMockPaymentRecorder(t)
			seen := cache.NewLRUCache[string, time.Time](10, time.Minute)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(recorder)

			svc := service.NewVerifier(logger, tc.secret, recorder, seen)

			got, err := svc.VerifyPayment(context.Background(), tc.cb)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVerifier_RecordsPaymentOnce(t *testing.T) {
	recorder := mocks.NewMockPaymentRecorder(t)
	recorder.EXPECT().RecordPayment(mock.Anything, mock.Anything).Return(nil).Once()

	seen := cache.NewLRUCache[string, time.Time](10, time.Minute)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewVerifier(logger, testSecret, recorder, seen)

	for range 3 {
		res, err := svc.VerifyPayment(context.Background(), validCallback())
		require.NoError(t, err)
		assert.True(t, res.Verified)
	}
}

func TestVerifier_RetriesRecordAfterFailure(t *testing.T) {
	recorder := mocks.NewMockPaymentRecorder(t)
	recorder.EXPECT().RecordPayment(mock.Anything, mock.Anything).Return(errors.New("temporary")).Once()
	recorder.EXPECT().RecordPayment(mock.Anything, mock.Anything).Return(nil).Once()

	seen := cache.NewLRUCache[string, time.Time](10, time.Minute)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewVerifier(logger, testSecret, recorder, seen)

	for range 3 {
		res, err := svc.VerifyPayment(context.Background(), validCallback())
		require.NoError(t, err)
		assert.True(t, res.Verified)
	}
}

func TestLogRecorder(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := service.NewLogRecorder(logger)

	err := rec.RecordPayment(context.Background(), entities.VerifiedPayment{OrderID: "order_1", PaymentID: "pay_1"})
	assert.NoError(t, err)
}
