package handler

import (
	"strings"
	"time"

	"github.com/SergeyBogomolovv/donation-service/internal/config"
	"github.com/SergeyBogomolovv/donation-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Amount принимает число или строку с числом.
// Нечисловое значение дает ноль, сервис отклонит его как невалидную сумму.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// CreateOrderRequest тело запроса на создание заказа
type CreateOrderRequest struct {
	Amount   Amount            `json:"amount" swaggertype:"number" example:"500"`
	Currency string            `json:"currency,omitempty" validate:"omitempty,iso4217" example:"INR"`
	Receipt  string            `json:"receipt" validate:"max=40" example:"receipt_1700000000000_a1b2c3d4"`
	Notes    map[string]string `json:"notes,omitempty" validate:"max=15"`
}

// Order заказ в платежном шлюзе, сумма в минимальных единицах
type Order struct {
	ID        string `json:"id" example:"order_IluGWxBm9U8zJ8"`
	Amount    int64  `json:"amount" example:"50000"`
	Currency  string `json:"currency" example:"INR"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status" example:"created"`
	CreatedAt int64  `json:"created_at" example:"1700000000"`
}

// CreateOrderResponse успешный ответ на создание заказа
type CreateOrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

// VerifyPaymentRequest поля колбэка шлюза после оплаты
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse результат проверки подписи
type VerifyPaymentResponse struct {
	Success  bool   `json:"success"`
	Verified bool   `json:"verified"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CheckoutConfig публичные настройки виджета оплаты, без секрета
type CheckoutConfig struct {
	Key           string        `json:"key"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Image         string        `json:"image,omitempty"`
	Currency      string        `json:"currency"`
	ThemeColor    string        `json:"theme_color"`
	PresetAmounts []int         `json:"preset_amounts"`
	DefaultAmount int           `json:"default_amount"`
	Purpose       string        `json:"purpose,omitempty"`
	Timeout       int           `json:"timeout"`
	Retry         CheckoutRetry `json:"retry"`
	Methods       Methods       `json:"method"`
	Modal         CheckoutModal `json:"modal"`
}

type CheckoutRetry struct {
	Enabled  bool `json:"enabled"`
	MaxCount int  `json:"max_count"`
}

type CheckoutModal struct {
	Escape       bool `json:"escape"`
	ConfirmClose bool `json:"confirm_close"`
}

// Methods - включенные способы оплаты
type Methods struct {
	Netbanking bool `json:"netbanking"`
	Card       bool `json:"card"`
	UPI        bool `json:"upi"`
	Wallet     bool `json:"wallet"`
}

// DonationEvent сообщение в Kafka о подтвержденном платеже
// EventID может отсутствовать у событий, записанных до его появления
type DonationEvent struct {
	EventID    string    `json:"event_id,omitempty" validate:"omitempty,uuid"`
	OrderID    string    `json:"order_id" validate:"required"`
	PaymentID  string    `json:"payment_id" validate:"required"`
	VerifiedAt time.Time `json:"verified_at" validate:"required"`
}

func NewCheckoutConfig(keyID string, c config.Checkout) CheckoutConfig {
	return CheckoutConfig{
		Key:           keyID,
		Name:          c.Name,
		Description:   c.Description,
		Image:         c.Logo,
		Currency:      c.Currency,
		ThemeColor:    c.ThemeColor,
		PresetAmounts: c.PresetAmounts,
		DefaultAmount: c.DefaultAmount,
		Purpose:       c.Purpose,
		Timeout:       int(c.Timeout.Seconds()),
		Retry: CheckoutRetry{
			Enabled:  c.RetryEnabled,
			MaxCount: c.RetryMaxCount,
		},
		Methods: NewMethods(c.Methods),
		Modal: CheckoutModal{
			Escape:       c.ModalEscape,
			ConfirmClose: c.ModalConfirmClose,
		},
	}
}

func NewMethods(names []string) Methods {
	var m Methods
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "netbanking":
			m.Netbanking = true
		case "card":
			m.Card = true
		case "upi":
			m.UPI = true
		case "wallet":
			m.Wallet = true
		}
	}
	return m
}

func CreateOrderJSONToEntity(r CreateOrderRequest) entities.DonationRequest {
	return entities.DonationRequest{
		Amount:   r.Amount.Decimal,
		Currency: r.Currency,
		Receipt:  r.Receipt,
		Notes:    r.Notes,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:        o.ID,
		Amount:    o.Amount,
		Currency:  o.Currency,
		Receipt:   o.Receipt,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func VerifyJSONToEntity(r VerifyPaymentRequest) entities.PaymentCallback {
	return entities.PaymentCallback{
		OrderID:   r.OrderID,
		PaymentID: r.PaymentID,
		Signature: r.Signature,
	}
}

func DonationEventFromEntity(p entities.VerifiedPayment) DonationEvent {
	return DonationEvent{
		OrderID:    p.OrderID,
		PaymentID:  p.PaymentID,
		VerifiedAt: p.VerifiedAt,
	}
}

func DonationEventToEntity(e DonationEvent) entities.VerifiedPayment {
	return entities.VerifiedPayment{
		OrderID:    e.OrderID,
		PaymentID:  e.PaymentID,
		VerifiedAt: e.VerifiedAt,
	}
}
