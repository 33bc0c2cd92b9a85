package donate

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/donation-service/pkg/signature"
	"github.com/google/uuid"
)

// Outcome - чем закончится оплата в SimulatedGateway
type Outcome int

const (
	OutcomePaid Outcome = iota
	OutcomeDismissed
	OutcomeFailed
	OutcomeTampered
)

// SimulatedGateway изображает виджет оплаты: сразу "оплачивает" заказ
// и подписывает результат секретом, как это делает шлюз.
type SimulatedGateway struct {
	secret  string
	outcome Outcome
}

func NewSimulatedGateway(secret string, outcome Outcome) *SimulatedGateway {
	return &SimulatedGateway{secret: secret, outcome: outcome}
}

func (g *SimulatedGateway) Open(ctx context.Context, opts CheckoutOptions) (PaymentResult, error) {
	if err := ctx.Err(); err != nil {
		return PaymentResult{}, err
	}

	switch g.outcome {
	case OutcomeDismissed:
		return PaymentResult{}, ErrCheckoutDismissed
	case OutcomeFailed:
		return PaymentResult{}, &CheckoutError{
			Code:        CodeGateway,
			Description: "Payment failed",
			Reason:      "payment_failed",
		}
	}

	paymentID := fmt.Sprintf("pay_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:14])
	sig := signature.Sign(g.secret, opts.OrderID, paymentID)
	if g.outcome == OutcomeTampered {
		sig = strings.Repeat("0", len(sig))
	}

	return PaymentResult{
		OrderID:   opts.OrderID,
		PaymentID: paymentID,
		Signature: sig,
	}, nil
}
