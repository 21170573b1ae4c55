package entities

// Settlement is the net effect of completing one delivery: the courier is
// credited the delivery fee and debited the flat platform commission in the
// same transaction.
type Settlement struct {
	DeliveryID       int64
	OrderID          int64
	CourierID        int64
	EarningAmount    int64
	CommissionAmount int64
	NetEarning       int64
	NewBalance       int64
}
