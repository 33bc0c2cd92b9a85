package entities

import "errors"

var (
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrReceiptRequired           = errors.New("receipt is required")
	ErrInvalidCurrency           = errors.New("invalid currency")
	ErrTooManyNotes              = errors.New("too many notes")
	ErrMissingVerificationFields = errors.New("missing payment verification fields")

	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")

	ErrDonationNotFound = errors.New("donation not found")
)
