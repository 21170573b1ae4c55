package settlement

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidCourierID  = errors.New("invalid courier id")
	ErrEmptyCode         = errors.New("confirmation code is required")

	ErrAlreadyCompleted    = errors.New("delivery already completed")
	ErrInvalidState        = errors.New("delivery is not ready for completion")
	ErrInvalidCode         = errors.New("confirmation code mismatch")
	ErrInsufficientBalance = errors.New("wallet cannot cover the commission")
)
