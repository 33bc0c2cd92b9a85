package donate

import (
	"context"
	"errors"
	"fmt"
)

// ErrCheckoutDismissed - донор закрыл виджет, не оплатив
var ErrCheckoutDismissed = errors.New("checkout dismissed")

// PaymentGateway - виджет оплаты. Реализация подставляется снаружи:
// браузерный виджет, тестовый двойник или симулятор.
type PaymentGateway interface {
	Open(ctx context.Context, opts CheckoutOptions) (PaymentResult, error)
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type Theme struct {
	Color string `json:"color"`
}

type Retry struct {
	Enabled  bool `json:"enabled"`
	MaxCount int  `json:"max_count"`
}

// Methods - способы оплаты, которые показывает виджет
type Methods struct {
	Netbanking bool `json:"netbanking"`
	Card       bool `json:"card"`
	UPI        bool `json:"upi"`
	Wallet     bool `json:"wallet"`
}

// Modal - поведение окна виджета. Закрытие окна донором
// реализация сообщает через ErrCheckoutDismissed.
type Modal struct {
	Escape       bool `json:"escape"`
	ConfirmClose bool `json:"confirm_close"`
}

// CheckoutOptions - параметры открытия виджета
type CheckoutOptions struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       string            `json:"image,omitempty"`
	OrderID     string            `json:"order_id"`
	Prefill     Prefill           `json:"prefill"`
	Notes       map[string]string `json:"notes,omitempty"`
	Theme       Theme             `json:"theme"`
	Timeout     int               `json:"timeout,omitempty"`
	Retry       Retry             `json:"retry"`
	Method      Methods           `json:"method"`
	Modal       Modal             `json:"modal"`
}

// Коды ошибок виджета
const (
	CodeBadRequest = "BAD_REQUEST_ERROR"
	CodeGateway    = "GATEWAY_ERROR"
	CodeServer     = "SERVER_ERROR"
)

// CheckoutError - отказ платежа, о котором сообщил виджет
type CheckoutError struct {
	Code        string
	Description string
	Reason      string
	PaymentID   string
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout failed: %s: %s", e.Code, e.Description)
}

// Message - текст для донора в зависимости от кода ошибки
func (e *CheckoutError) Message() string {
	switch e.Code {
	case CodeBadRequest:
		if e.Description != "" {
			return e.Description
		}
		return "Payment could not be processed. Please check your payment details."
	case CodeGateway:
		return "Your bank could not process the payment. Please try another method."
	case CodeServer:
		return "Payment service is temporarily unavailable. Please try again later."
	default:
		return "Payment failed. Please try again."
	}
}
