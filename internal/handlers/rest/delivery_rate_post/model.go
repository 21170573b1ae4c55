package delivery_rate_post

type rateRequest struct {
	DeliveryID int64 `json:"delivery_id"`
	Rating     int16 `json:"rating"`
}
