package delivery

import "time"

type DeliveryDB struct {
	ID                 int64
	OrderID            int64
	CourierID          *int64
	Status             string
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

type DeliveryModifyDB struct {
	ID               *int64
	CourierID        *int64
	Status           *string
	WaitingStartedAt *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
	CustomerRating   *int16
}
