package order

import "errors"

var (
	ErrInvalidEvent    = errors.New("order id and status are required")
	ErrUndefinedStatus = errors.New("undefined order status")
	ErrOrderNotFound   = errors.New("order not found")
)
