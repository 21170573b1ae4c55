package wallet

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidOwner     = errors.New("invalid wallet owner")
	ErrMissingReference = errors.New("missing transaction reference")

	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrDuplicateReference  = errors.New("transaction reference already used")
)
