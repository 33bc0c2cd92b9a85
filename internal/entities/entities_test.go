package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	testCases := []struct {
		amount string
		want   int64
	}{
		{amount: "500", want: 50000},
		{amount: "99.99", want: 9999},
		{amount: "10.555", want: 1056},
		{amount: "1.005", want: 101},
		{amount: "0.004", want: 0},
		{amount: "0.005", want: 1},
		{amount: "2500.1", want: 250010},
		{amount: "1000000000", want: 100000000000},
		{amount: "500.000000000000000000000000", want: 50000},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			got, err := entities.ToMinorUnits(decimal.RequireFromString(tc.amount))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToMinorUnits_OutOfRange(t *testing.T) {
	amounts := []string{
		"1000000000.01",
		"184467440737095516.17",
		"1e10",
		"1e20000000",
		"1e-20000000",
		"-1e20000000",
	}

	for _, a := range amounts {
		t.Run(a, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				_, err := entities.ToMinorUnits(decimal.RequireFromString(a))
				done <- err
			}()

			select {
			case err := <-done:
				assert.ErrorIs(t, err, entities.ErrInvalidAmount)
			case <-time.After(time.Second):
				t.Fatal("conversion did not finish in time")
			}
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "500", entities.FromMinorUnits(50000).String())
	assert.Equal(t, "99.99", entities.FromMinorUnits(9999).String())
}

func TestPaymentCallback_Complete(t *testing.T) {
	assert.True(t, entities.PaymentCallback{OrderID: "o", PaymentID: "p", Signature: "s"}.Complete())
	assert.False(t, entities.PaymentCallback{OrderID: "o", PaymentID: "p"}.Complete())
	assert.False(t, entities.PaymentCallback{PaymentID: "p", Signature: "s"}.Complete())
	assert.False(t, entities.PaymentCallback{OrderID: "o", Signature: "s"}.Complete())
}
