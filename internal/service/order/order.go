package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// Service turns order status change events into delivery lifecycle actions.
// The event only carries the order id and the claimed status; the order row
// is the source of truth and is re-read before dispatching.
type Service struct {
	repository    Repository
	statusFactory HandlerFactory
}

func New(repository Repository, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrInvalidEvent
	}

	order, err := s.repository.GetByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// Statuses without a handler are not an error, just nothing to do.
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
