package donate_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/donation-service/pkg/donate"
	"github.com/SergeyBogomolovv/donation-service/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGateway_Open(t *testing.T) {
	opts := donate.CheckoutOptions{OrderID: "order_1", Amount: 50000}

	t.Run("paid", func(t *testing.T) {
		res, err := donate.NewSimulatedGateway("secret", donate.OutcomePaid).Open(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, "order_1", res.OrderID)
		assert.True(t, signature.Verify("secret", res.OrderID, res.PaymentID, res.Signature))
	})

	t.Run("tampered", func(t *testing.T) {
		res, err := donate.NewSimulatedGateway("secret", donate.OutcomeTampered).Open(context.Background(), opts)
		require.NoError(t, err)
		assert.False(t, signature.Verify("secret", res.OrderID, res.PaymentID, res.Signature))
	})

	t.Run("dismissed", func(t *testing.T) {
		_, err := donate.NewSimulatedGateway("secret", donate.OutcomeDismissed).Open(context.Background(), opts)
		assert.ErrorIs(t, err, donate.ErrCheckoutDismissed)
	})

	t.Run("failed", func(t *testing.T) {
		_, err := donate.NewSimulatedGateway("secret", donate.OutcomeFailed).Open(context.Background(), opts)
		var ce *donate.CheckoutError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, donate.CodeGateway, ce.Code)
	})
}
