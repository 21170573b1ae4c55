package order

import "time"

type OrderDB struct {
	ID           int64
	PharmacyID   int64
	Status       string
	PaymentMode  string
	DeliveryCode string
	DeliveryFee  int64
	TotalAmount  int64
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
