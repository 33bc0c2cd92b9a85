package donate

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	MsgInvalidAmount    = "Please enter a valid donation amount."
	MsgDonorDetails     = "Please fill all donor details."
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgInvalidPhone     = "Please enter a valid 10-digit phone number."
	MsgTaxExemptionData = "PAN, Aadhaar, and address are required for 80G exemption."
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidationError - ошибка ввода с сообщением для донора
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("donor_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("donor_phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	return v
}

// ParseAmount разбирает сумму из формы. Сумма должна быть числом больше нуля.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "Amount", Message: MsgInvalidAmount}
	}
	return amount, nil
}

// Validate проверяет ввод в порядке: сумма, обязательные поля, email, телефон, 80G.
// Возвращает первую найденную ошибку.
func Validate(v *validator.Validate, in Input) (decimal.Decimal, error) {
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return decimal.Zero, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := v.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return decimal.Zero, err
		}
		return decimal.Zero, fieldError(ve)
	}

	if in.TaxExemption.Requested {
		t := in.TaxExemption
		if strings.TrimSpace(t.PAN) == "" || strings.TrimSpace(t.Aadhaar) == "" || strings.TrimSpace(t.Address) == "" {
			return decimal.Zero, &ValidationError{Field: "TaxExemption", Message: MsgTaxExemptionData}
		}
	}

	return amount, nil
}

func fieldError(ve validator.ValidationErrors) *ValidationError {
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return &ValidationError{Field: fe.Field(), Message: MsgDonorDetails}
		}
	}

	fe := ve[0]
	switch fe.Field() {
	case "Email":
		return &ValidationError{Field: "Email", Message: MsgInvalidEmail}
	case "Phone":
		return &ValidationError{Field: "Phone", Message: MsgInvalidPhone}
	default:
		return &ValidationError{Field: fe.Field(), Message: MsgDonorDetails}
	}
}
