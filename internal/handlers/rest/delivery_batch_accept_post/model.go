package delivery_batch_accept_post

import "time"

type batchAcceptRequest struct {
	DeliveryIDs []int64 `json:"delivery_ids"`
	CourierID   int64   `json:"courier_id"`
}

type batchAcceptResponse struct {
	CourierID   int64     `json:"courier_id"`
	DeliveryIDs []int64   `json:"delivery_ids"`
	AcceptedAt  time.Time `json:"accepted_at"`
}

type batchAcceptErrorResponse struct {
	Error                  string  `json:"error"`
	UnavailableDeliveryIDs []int64 `json:"unavailable_delivery_ids,omitempty"`
}
