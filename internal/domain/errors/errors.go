package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrOrderNumberTaken   = errors.New("order number taken")
	ErrConflict           = errors.New("persistence conflict")
)
