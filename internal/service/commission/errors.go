package commission

import "errors"

var (
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidRate     = errors.New("commission rate must be between 0 and 100")
	ErrDeliveryMissing = errors.New("order has no delivery to charge the courier for")
)
