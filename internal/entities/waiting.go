package entities

// WaitingSettings configures waiting-time billing at the customer's door.
type WaitingSettings struct {
	TimeoutMinutes int64
	FreeMinutes    int64
	FeePerMinute   int64
}

// WaitingInfo is derived from a delivery's waiting_started_at and the
// configured settings. It is never persisted.
type WaitingInfo struct {
	ElapsedMinutes   int64
	FreeMinutes      int64
	BillableMinutes  int64
	Fee              int64
	TimeoutMinutes   int64
	RemainingSeconds int64
	IsExpired        bool
}
