// Package donate - клиентская часть пожертвования: форма, загрузка виджета
// оплаты, обращения к API и страница подтверждения.
package donate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type State int

const (
	Idle State = iota
	Validating
	OrderPending
	CheckoutOpen
	Verifying
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case OrderPending:
		return "order_pending"
	case CheckoutOpen:
		return "checkout_open"
	case Verifying:
		return "verifying"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	MsgOrderFailed        = "Could not start the payment. Please try again."
	MsgGatewayLoadFailed  = "Payment gateway failed to load. Please refresh and try again."
	MsgCheckoutDismissed  = "Payment was cancelled."
	MsgVerificationFailed = "Payment verification failed. Please contact support with your payment ID."
)

// ErrAttemptInProgress - предыдущая попытка оплаты еще не завершена
var ErrAttemptInProgress = errors.New("donation attempt already in progress")

// Error - ошибка попытки оплаты. Stage - состояние, на котором попытка сорвалась.
type Error struct {
	Stage   State
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OrderAPI - серверная часть, с которой работает форма
type OrderAPI interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
	VerifyPayment(ctx context.Context, p PaymentResult) (Verification, error)
}

type Form struct {
	logger   *slog.Logger
	api      OrderAPI
	loader   *Loader
	settings Settings
	validate *validator.Validate
	now      func() time.Time

	mu      sync.Mutex
	state   State
	lastErr error
}

func NewForm(logger *slog.Logger, api OrderAPI, loader *Loader, settings Settings) *Form {
	return &Form{
		logger:   logger.With(slog.String("component", "donate_form")),
		api:      api,
		loader:   loader,
		settings: settings,
		validate: newValidator(),
		now:      time.Now,
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err - ошибка последней неудачной попытки
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Submit проводит одну попытку оплаты от проверки ввода до подтверждения.
// При любой ошибке форма возвращается в Idle.
func (f *Form) Submit(ctx context.Context, in Input) (Confirmation, error) {
	if !f.begin() {
		return Confirmation{}, ErrAttemptInProgress
	}

	c, err := f.submit(ctx, in)
	f.finish(err)
	return c, err
}

func (f *Form) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Idle && f.state != Complete {
		return false
	}
	f.state = Validating
	f.lastErr = nil
	return true
}

func (f *Form) finish(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Idle
		f.lastErr = err
		return
	}
	f.state = Complete
}

func (f *Form) moveTo(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *Form) submit(ctx context.Context, in Input) (Confirmation, error) {
	amount, err := Validate(f.validate, in)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return Confirmation{}, &Error{Stage: Validating, Message: ve.Message, Err: err}
		}
		return Confirmation{}, &Error{Stage: Validating, Message: MsgDonorDetails, Err: err}
	}

	f.moveTo(OrderPending)
	order, err := f.createOrder(ctx, in, amount)
	if err != nil {
		return Confirmation{}, &Error{Stage: OrderPending, Message: MsgOrderFailed, Err: err}
	}

	f.moveTo(CheckoutOpen)
	payment, err := f.checkout(ctx, in, order)
	if err != nil {
		return Confirmation{}, err
	}

	f.moveTo(Verifying)
	v, err := f.api.VerifyPayment(ctx, payment)
	if err != nil {
		return Confirmation{}, &Error{Stage: Verifying, Message: MsgVerificationFailed, Err: err}
	}
	if !v.Verified {
		return Confirmation{}, &Error{Stage: Verifying, Message: MsgVerificationFailed}
	}

	f.logger.InfoContext(ctx, "donation complete",
		slog.String("order_id", payment.OrderID),
		slog.String("payment_id", payment.PaymentID),
	)

	return Confirmation{
		DonorName: in.Name,
		Amount:    amount,
		Currency:  order.Currency,
		PaymentID: payment.PaymentID,
		OrderID:   payment.OrderID,
		IssuedAt:  f.now(),
	}, nil
}

func (f *Form) createOrder(ctx context.Context, in Input, amount decimal.Decimal) (Order, error) {
	req := OrderRequest{
		Amount:   amount,
		Currency: f.settings.Currency,
		Receipt:  NewReceipt(f.now()),
		Notes:    Notes(in, f.settings.Purpose),
	}

	order, err := f.api.CreateOrder(ctx, req)
	if err != nil {
		f.logger.ErrorContext(ctx, "failed to create order",
			slog.String("receipt", req.Receipt),
			slog.Any("error", err),
		)
		return Order{}, err
	}
	return order, nil
}

func (f *Form) checkout(ctx context.Context, in Input, order Order) (PaymentResult, error) {
	gw, err := f.loader.Get(ctx)
	if err != nil {
		return PaymentResult{}, &Error{Stage: CheckoutOpen, Message: MsgGatewayLoadFailed, Err: err}
	}

	opts := CheckoutOptions{
		Key:         f.settings.Key,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        f.settings.Name,
		Description: f.settings.Description,
		Image:       f.settings.Image,
		OrderID:     order.ID,
		Prefill: Prefill{
			Name:    in.Name,
			Email:   in.Email,
			Contact: in.Phone,
		},
		Notes:   Notes(in, f.settings.Purpose),
		Theme:   Theme{Color: f.settings.ThemeColor},
		Timeout: f.settings.Timeout,
		Retry:   f.settings.Retry,
		Method:  f.settings.Method,
		Modal:   f.settings.Modal,
	}

	res, err := gw.Open(ctx, opts)
	if err == nil {
		return res, nil
	}

	var ce *CheckoutError
	switch {
	case errors.Is(err, ErrCheckoutDismissed):
		return PaymentResult{}, &Error{Stage: CheckoutOpen, Message: MsgCheckoutDismissed, Err: err}
	case errors.As(err, &ce):
		f.logger.WarnContext(ctx, "checkout failed",
			slog.String("order_id", order.ID),
			slog.String("code", ce.Code),
			slog.String("reason", ce.Reason),
		)
		return PaymentResult{}, &Error{Stage: CheckoutOpen, Message: ce.Message(), Err: err}
	default:
		return PaymentResult{}, &Error{Stage: CheckoutOpen, Message: (&CheckoutError{}).Message(), Err: err}
	}
}
