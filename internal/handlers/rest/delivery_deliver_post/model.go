package delivery_deliver_post

type deliverRequest struct {
	DeliveryID       int64  `json:"delivery_id"`
	CourierID        int64  `json:"courier_id"`
	ConfirmationCode string `json:"confirmation_code"`
}

type deliverResponse struct {
	DeliveryID       int64 `json:"delivery_id"`
	OrderID          int64 `json:"order_id"`
	CourierID        int64 `json:"courier_id"`
	EarningAmount    int64 `json:"earning_amount"`
	CommissionAmount int64 `json:"commission_amount"`
	NetEarning       int64 `json:"net_earning"`
	NewBalance       int64 `json:"new_balance"`
}
