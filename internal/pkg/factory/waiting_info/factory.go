package waiting_info

import (
	"time"

	"dispatch/internal/entities"
)

// Factory derives waiting-time billing info from a delivery's arrival
// timestamp. Pure computation; the caller supplies both clock readings.
type Factory struct{}

func New() *Factory {
	return &Factory{}
}

func (f *Factory) Compute(startedAt, now time.Time, s entities.WaitingSettings) entities.WaitingInfo {
	elapsed := now.Sub(startedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	elapsedMinutes := int64(elapsed / time.Minute)
	elapsedSeconds := int64(elapsed / time.Second)

	billable := elapsedMinutes - s.FreeMinutes
	if billable < 0 {
		billable = 0
	}

	remaining := s.TimeoutMinutes*60 - elapsedSeconds
	if remaining < 0 {
		remaining = 0
	}

	return entities.WaitingInfo{
		ElapsedMinutes:   elapsedMinutes,
		FreeMinutes:      s.FreeMinutes,
		BillableMinutes:  billable,
		Fee:              billable * s.FeePerMinute,
		TimeoutMinutes:   s.TimeoutMinutes,
		RemainingSeconds: remaining,
		IsExpired:        elapsedMinutes >= s.TimeoutMinutes,
	}
}
