package entities

import "time"

type Order struct {
	ID           int64
	PharmacyID   int64
	Status       OrderStatusType
	PaymentMode  PaymentModeType
	DeliveryCode string
	DeliveryFee  int64
	TotalAmount  int64
	DeliveredAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderPreparing      OrderStatusType = "preparing"
	OrderReadyForPickup OrderStatusType = "ready_for_pickup"
	OrderInDelivery     OrderStatusType = "in_delivery"
	OrderDelivered      OrderStatusType = "delivered"
	OrderCancelled      OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentModeType string

const (
	PaymentCash        PaymentModeType = "cash"
	PaymentMobileMoney PaymentModeType = "mobile_money"
	PaymentCard        PaymentModeType = "card"
)

func (m PaymentModeType) String() string {
	return string(m)
}

type OrderModify struct {
	ID     *int64
	Status *OrderStatusType
}
