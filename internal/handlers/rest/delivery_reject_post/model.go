package delivery_reject_post

type rejectRequest struct {
	DeliveryID int64 `json:"delivery_id"`
	CourierID  int64 `json:"courier_id"`
}
