package donate

import (
	"time"

	"github.com/shopspring/decimal"
)

// Input - то, что донор ввел в форму
type Input struct {
	// Amount - выбранная сумма или произвольная, как ее ввели
	Amount string

	Name    string `validate:"required"`
	Email   string `validate:"required,donor_email"`
	Phone   string `validate:"required,donor_phone"`
	Purpose string

	TaxExemption TaxExemption
}

// TaxExemption - данные для квитанции по 80G
type TaxExemption struct {
	Requested bool
	PAN       string
	Aadhaar   string
	Address   string
}

// OrderRequest тело запроса на создание заказа
type OrderRequest struct {
	Amount   decimal.Decimal   `json:"amount"`
	Currency string            `json:"currency,omitempty"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order заказ шлюза, сумма в минимальных единицах
type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// PaymentResult - поля, которые виджет отдает после успешной оплаты
type PaymentResult struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type Verification struct {
	Verified bool
	Message  string
}

// Settings - публичные настройки виджета, приходят с сервера
type Settings struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Image         string  `json:"image,omitempty"`
	Currency      string  `json:"currency"`
	ThemeColor    string  `json:"theme_color"`
	PresetAmounts []int   `json:"preset_amounts"`
	DefaultAmount int     `json:"default_amount"`
	Purpose       string  `json:"purpose,omitempty"`
	Timeout       int     `json:"timeout"`
	Retry         Retry   `json:"retry"`
	Method        Methods `json:"method"`
	Modal         Modal   `json:"modal"`
}

// Confirmation - итог успешного пожертвования
type Confirmation struct {
	DonorName string
	Amount    decimal.Decimal
	Currency  string
	PaymentID string
	OrderID   string
	IssuedAt  time.Time
}
