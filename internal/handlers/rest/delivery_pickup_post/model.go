package delivery_pickup_post

type pickupRequest struct {
	DeliveryID int64 `json:"delivery_id"`
	CourierID  int64 `json:"courier_id"`
}

type pickupResponse struct {
	DeliveryID int64  `json:"delivery_id"`
	OrderID    int64  `json:"order_id"`
	Status     string `json:"status"`
	PickedUpAt string `json:"picked_up_at"`
}
