package delivery_transit_post

type transitRequest struct {
	DeliveryID int64 `json:"delivery_id"`
	CourierID  int64 `json:"courier_id"`
}

type transitResponse struct {
	DeliveryID int64  `json:"delivery_id"`
	OrderID    int64  `json:"order_id"`
	Status     string `json:"status"`
}
