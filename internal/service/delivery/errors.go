package delivery

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidCourierID  = errors.New("invalid courier id")
	ErrInvalidOrder      = errors.New("order is not ready for delivery")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrEmptyBatch        = errors.New("no deliveries requested")

	ErrDeliveryNotFound      = errors.New("delivery not found")
	ErrNotAvailable          = errors.New("delivery is no longer available")
	ErrInvalidState          = errors.New("action not permitted in current delivery status")
	ErrOrderAlreadyAssigned  = errors.New("order already has a delivery")
	ErrCapacityExceeded      = errors.New("courier active deliveries limit exceeded")
	ErrWaitingAlreadyStarted = errors.New("waiting timer already started")
	ErrWaitingNotStarted     = errors.New("waiting timer not started")
	ErrWaitingNotExpired     = errors.New("waiting timer has not expired")
	ErrAlreadyRated          = errors.New("delivery already rated")
	ErrPartiallyUnavailable  = errors.New("some requested deliveries are unavailable")
)

// PartiallyUnavailableError reports which deliveries of a batch-accept
// request could not be taken. Matches ErrPartiallyUnavailable via errors.Is.
type PartiallyUnavailableError struct {
	DeliveryIDs []int64
}

func (e *PartiallyUnavailableError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPartiallyUnavailable, e.DeliveryIDs)
}

func (e *PartiallyUnavailableError) Is(target error) bool {
	return target == ErrPartiallyUnavailable
}
