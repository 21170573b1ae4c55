package delivery_accept_post

type acceptRequest struct {
	DeliveryID int64 `json:"delivery_id"`
	CourierID  int64 `json:"courier_id"`
}

type acceptResponse struct {
	DeliveryID int64  `json:"delivery_id"`
	OrderID    int64  `json:"order_id"`
	CourierID  int64  `json:"courier_id"`
	Status     string `json:"status"`
}
