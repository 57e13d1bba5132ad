package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these
// to HTTP statuses; everything else is treated as an internal error.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateAccount  = errors.New("account already exists")
	ErrAuthFailure       = errors.New("invalid credentials")
	ErrInvalidState      = errors.New("invalid state")
	ErrNotFound          = errors.New("not found")
)
