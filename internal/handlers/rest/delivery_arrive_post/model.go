package delivery_arrive_post

import "dispatch/internal/entities"

type arriveRequest struct {
	DeliveryID int64 `json:"delivery_id"`
	CourierID  int64 `json:"courier_id"`
}

type waitingResponse struct {
	ElapsedMinutes   int64 `json:"elapsed_minutes"`
	FreeMinutes      int64 `json:"free_minutes"`
	BillableMinutes  int64 `json:"billable_minutes"`
	Fee              int64 `json:"fee"`
	TimeoutMinutes   int64 `json:"timeout_minutes"`
	RemainingSeconds int64 `json:"remaining_seconds"`
	IsExpired        bool  `json:"is_expired"`
}

func newWaitingResponse(info *entities.WaitingInfo) waitingResponse {
	return waitingResponse{
		ElapsedMinutes:   info.ElapsedMinutes,
		FreeMinutes:      info.FreeMinutes,
		BillableMinutes:  info.BillableMinutes,
		Fee:              info.Fee,
		TimeoutMinutes:   info.TimeoutMinutes,
		RemainingSeconds: info.RemainingSeconds,
		IsExpired:        info.IsExpired,
	}
}
