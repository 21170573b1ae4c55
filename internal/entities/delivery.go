package entities

import "time"

type Delivery struct {
	ID                 int64
	OrderID            int64
	CourierID          *int64
	Status             DeliveryStatusType
	PickupLat          float64
	PickupLon          float64
	DropoffLat         float64
	DropoffLon         float64
	EstimatedDistanceM int64
	DeliveryFee        int64
	WaitingStartedAt   *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CustomerRating     *int16
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryAccepted  DeliveryStatusType = "accepted"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is allowed from s.
func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// AllowsPickup reports whether a courier may pick the order up from s.
// "accepted" is equivalent to "assigned" for pickup eligibility.
func (s DeliveryStatusType) AllowsPickup() bool {
	return s == DeliveryAssigned || s == DeliveryAccepted
}

// AllowsDeliver reports whether the delivery can be completed from s.
func (s DeliveryStatusType) AllowsDeliver() bool {
	return s == DeliveryPickedUp || s == DeliveryInTransit
}

type DeliveryModify struct {
	ID               *int64
	CourierID        *int64
	Status           *DeliveryStatusType
	WaitingStartedAt *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
	CustomerRating   *int16
}

// BatchAcceptResult reports the outcome of an atomic multi-delivery accept.
type BatchAcceptResult struct {
	CourierID   int64
	DeliveryIDs []int64
	AcceptedAt  time.Time
}
