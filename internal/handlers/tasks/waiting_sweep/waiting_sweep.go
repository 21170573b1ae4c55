package waiting_sweep

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service interface {
	ExpiredWaitingDeliveries(ctx context.Context) ([]entities.Delivery, error)
	CancelForTimeout(ctx context.Context, deliveryID int64) error
}

// WaitingSweep cancels deliveries whose doorstep waiting timer has run out.
type WaitingSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewWaitingSweep(log logger.Logger, service Service, interval time.Duration) *WaitingSweep {
	return &WaitingSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *WaitingSweep) TTL() time.Duration {
	return s.interval
}

func (s *WaitingSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	expired, err := s.service.ExpiredWaitingDeliveries(ctxWithTimeout)
	if err != nil {
		return err
	}

	var cancelled int64
	for _, d := range expired {
		// One stuck delivery must not block the rest of the sweep.
		err := s.service.CancelForTimeout(ctxWithTimeout, d.ID)
		if err != nil {
			s.log.With(
				logger.NewField("delivery_id", d.ID),
				logger.NewField("error", err),
			).Warn("cancel expired waiting delivery")
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		s.log.With(
			logger.NewField("cancelled_deliveries", cancelled),
		).Info("waiting sweep")
	}

	return nil
}

func (s *WaitingSweep) Info() string {
	return "waiting sweep"
}
