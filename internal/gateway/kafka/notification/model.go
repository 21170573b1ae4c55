package notification

import "time"

const (
	eventArrived          = "delivery.arrived"
	eventDelivered        = "delivery.completed"
	eventTimeoutCancelled = "delivery.timeout_cancelled"
)

const (
	recipientCustomer = "customer"
	recipientCourier  = "courier"
	recipientPharmacy = "pharmacy"
)

type notificationEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	DeliveryID int64     `json:"delivery_id"`
	OrderID    int64     `json:"order_id"`
	CourierID  *int64    `json:"courier_id,omitempty"`
	Recipients []string  `json:"recipients"`
	OccurredAt time.Time `json:"occurred_at"`
}
