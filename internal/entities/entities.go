package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "INR"

	// Лимиты Razorpay Orders API
	MaxReceiptLength = 40
	MaxNotes         = 15
)

// DonationRequest - одна попытка пожертвования, живет только в рамках запроса
type DonationRequest struct {
	Amount   decimal.Decimal
	Currency string
	Receipt  string
	Notes    map[string]string
}

// OrderParams - то, что уходит в платежный шлюз
type OrderParams struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order принадлежит шлюзу, сервис его только пересылает
type Order struct {
	ID        string
	Amount    int64
	Currency  string
	Receipt   string
	Status    string
	CreatedAt int64
	Notes     map[string]string
}

type PaymentCallback struct {
	OrderID   string
	PaymentID string
	Signature string
}

// Complete сообщает, что все три поля колбэка заполнены
func (c PaymentCallback) Complete() bool {
	return c.OrderID != "" && c.PaymentID != "" && c.Signature != ""
}

type VerificationResult struct {
	Verified bool
	Message  string
}

type VerifiedPayment struct {
	OrderID    string
	PaymentID  string
	VerifiedAt time.Time
}

// Donation - запись в журнале пожертвований
type Donation struct {
	PaymentID  string
	OrderID    string
	Amount     int64
	Currency   string
	Receipt    string
	Notes      map[string]string
	VerifiedAt time.Time
}

var (
	hundred = decimal.NewFromInt(100)

	// MaxAmount - верхняя граница суммы одного заказа в основных единицах
	MaxAmount = decimal.NewFromInt(1_000_000_000)
)

// Допустимый диапазон экспоненты суммы
const (
	maxAmountExponent = 9
	maxAmountScale    = 32
)

// ToMinorUnits переводит сумму в минимальные единицы валюты (пайсы).
// Округление до ближайшего целого, половина - от нуля.
// Сумма больше MaxAmount или со слишком большой экспонентой дает ErrInvalidAmount.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	// экспонента проверяется до любой арифметики
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountScale {
		return 0, ErrInvalidAmount
	}
	if amount.Abs().GreaterThan(MaxAmount) {
		return 0, ErrInvalidAmount
	}

	minor := amount.Mul(hundred).Round(0)
	if !minor.BigInt().IsInt64() {
		return 0, ErrInvalidAmount
	}
	return minor.IntPart(), nil
}

// FromMinorUnits - обратное преобразование для отображения
func FromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
