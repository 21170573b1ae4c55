package order_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/delivery"
	"dispatch/internal/service/order"
)

type StatusHandlerFactory struct {
	deliveryService order.DeliveryService
}

func NewStatusHandlerFactory(deliveryService order.DeliveryService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryService: deliveryService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderReadyForPickup:
		return f.readyForPickupHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) readyForPickupHandler(ctx context.Context, o *entities.Order) error {
	_, err := f.deliveryService.CreateForOrder(ctx, o)
	if err != nil {
		// A replayed event for an order that already has a delivery is fine.
		if errors.Is(err, delivery.ErrOrderAlreadyAssigned) {
			return nil
		}
		return fmt.Errorf("create delivery for ready order %d: %w", o.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, o *entities.Order) error {
	if err := f.deliveryService.CancelForOrder(ctx, o.ID); err != nil {
		// Cancelled orders without a delivery need no action.
		if errors.Is(err, delivery.ErrDeliveryNotFound) {
			return nil
		}
		return fmt.Errorf("cancel delivery for cancelled order %d: %w", o.ID, err)
	}
	return nil
}
