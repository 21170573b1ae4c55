package delivery

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Delivery governs the courier-facing delivery lifecycle:
// pending -> assigned/accepted -> picked_up -> in_transit -> delivered,
// or -> cancelled. Every transition is guarded by the current status and runs
// under a row lock on the delivery, so concurrent courier actions serialize.
type Delivery struct {
	repository     Repository
	orders         OrderRepository
	waitingFactory WaitingInfoFactory
	notifier       Notifier
	txManager      TxManager
	log            logger.Logger

	waitingSettings     entities.WaitingSettings
	maxActiveDeliveries int64
}

func New(
	repository Repository,
	orders OrderRepository,
	waitingFactory WaitingInfoFactory,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
	waitingSettings entities.WaitingSettings,
	maxActiveDeliveries int64,
) *Delivery {
	return &Delivery{
		repository:          repository,
		orders:              orders,
		waitingFactory:      waitingFactory,
		notifier:            notifier,
		txManager:           txManager,
		log:                 log,
		waitingSettings:     waitingSettings,
		maxActiveDeliveries: maxActiveDeliveries,
	}
}

// CreateForOrder opens a pending delivery once an order is ready for pickup.
func (d *Delivery) CreateForOrder(ctx context.Context, order *entities.Order) (*entities.Delivery, error) {
	if order == nil || !isValidID(order.ID) {
		return nil, ErrInvalidOrder
	}
	if order.Status != entities.OrderReadyForPickup {
		return nil, ErrInvalidOrder
	}

	created, err := d.repository.Create(ctx, entities.Delivery{
		OrderID:     order.ID,
		Status:      entities.DeliveryPending,
		DeliveryFee: order.DeliveryFee,
	})
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return created, nil
}

// Accept assigns a pending, unassigned delivery to the courier.
func (d *Delivery) Accept(ctx context.Context, deliveryID, courierID int64) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var accepted *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if current.Status != entities.DeliveryPending || current.CourierID != nil {
			return ErrNotAvailable
		}

		// A courier who declined this delivery does not get it back.
		rejected, err := d.repository.HasRejection(ctx, deliveryID, courierID)
		if err != nil {
			return fmt.Errorf("check rejection log: %w", err)
		}
		if rejected {
			return ErrNotAvailable
		}

		newStatus := entities.DeliveryAssigned
		accepted, err = d.repository.Update(ctx, entities.DeliveryModify{
			ID:        &deliveryID,
			CourierID: &courierID,
			Status:    &newStatus,
		})
		if err != nil {
			return fmt.Errorf("assign delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// BatchAccept assigns a set of pending deliveries to the courier atomically.
// All requested deliveries are taken together or none are, bounded by the
// max-active-deliveries policy.
func (d *Delivery) BatchAccept(ctx context.Context, deliveryIDs []int64, courierID int64) (*entities.BatchAcceptResult, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	ids, err := uniqueSortedIDs(deliveryIDs)
	if err != nil {
		return nil, err
	}

	var result *entities.BatchAcceptResult
	err = d.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := d.repository.ListForUpdate(ctx, ids)
		if err != nil {
			return fmt.Errorf("lock deliveries: %w", err)
		}

		available := make(map[int64]struct{}, len(locked))
		for _, dl := range locked {
			if dl.Status == entities.DeliveryPending && dl.CourierID == nil {
				available[dl.ID] = struct{}{}
			}
		}

		var unavailable []int64
		for _, id := range ids {
			if _, ok := available[id]; !ok {
				unavailable = append(unavailable, id)
			}
		}
		if len(unavailable) > 0 {
			return &PartiallyUnavailableError{DeliveryIDs: unavailable}
		}

		active, err := d.repository.CountActiveByCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("count active deliveries: %w", err)
		}
		if active+int64(len(ids)) > d.maxActiveDeliveries {
			return ErrCapacityExceeded
		}

		newStatus := entities.DeliveryAssigned
		for i := range ids {
			id := ids[i]
			if _, err := d.repository.Update(ctx, entities.DeliveryModify{
				ID:        &id,
				CourierID: &courierID,
				Status:    &newStatus,
			}); err != nil {
				return fmt.Errorf("assign delivery %d: %w", id, err)
			}
		}

		result = &entities.BatchAcceptResult{
			CourierID:   courierID,
			DeliveryIDs: ids,
			AcceptedAt:  time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Pickup marks the order as collected from the pharmacy and moves the owning
// order into in_delivery.
func (d *Delivery) Pickup(ctx context.Context, deliveryID, courierID int64) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var pickedUp *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if !current.Status.AllowsPickup() || !isAssignedTo(current, courierID) {
			return ErrInvalidState
		}

		now := time.Now().UTC()
		newStatus := entities.DeliveryPickedUp
		pickedUp, err = d.repository.Update(ctx, entities.DeliveryModify{
			ID:         &deliveryID,
			Status:     &newStatus,
			PickedUpAt: &now,
		})
		if err != nil {
			return fmt.Errorf("mark picked up: %w", err)
		}

		if err := d.orders.SetStatus(ctx, current.OrderID, entities.OrderInDelivery, nil); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pickedUp, nil
}

// StartTransit records that the courier left the pharmacy towards the
// customer.
func (d *Delivery) StartTransit(ctx context.Context, deliveryID, courierID int64) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var inTransit *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if current.Status != entities.DeliveryPickedUp || !isAssignedTo(current, courierID) {
			return ErrInvalidState
		}

		newStatus := entities.DeliveryInTransit
		inTransit, err = d.repository.Update(ctx, entities.DeliveryModify{
			ID:     &deliveryID,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("mark in transit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inTransit, nil
}

// ReportArrival starts the waiting timer at the customer's location and
// returns the billing countdown. Starting twice is rejected.
func (d *Delivery) ReportArrival(ctx context.Context, deliveryID, courierID int64) (*entities.WaitingInfo, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var arrived *entities.Delivery
	startedAt := time.Now().UTC()
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if !current.Status.AllowsDeliver() || !isAssignedTo(current, courierID) {
			return ErrInvalidState
		}
		if current.WaitingStartedAt != nil {
			return ErrWaitingAlreadyStarted
		}

		arrived, err = d.repository.Update(ctx, entities.DeliveryModify{
			ID:               &deliveryID,
			WaitingStartedAt: &startedAt,
		})
		if err != nil {
			return fmt.Errorf("start waiting timer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notifyErr := d.notifier.Arrived(ctx, arrived); notifyErr != nil {
		d.log.Error("arrival notification failed",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("error", notifyErr),
		)
	}

	info := d.waitingFactory.Compute(startedAt, startedAt, d.waitingSettings)
	return &info, nil
}

// WaitingStatus returns the current waiting countdown without side effects.
func (d *Delivery) WaitingStatus(ctx context.Context, deliveryID int64) (*entities.WaitingInfo, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	current, err := d.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	if current.WaitingStartedAt == nil {
		return nil, ErrWaitingNotStarted
	}

	info := d.waitingFactory.Compute(*current.WaitingStartedAt, time.Now().UTC(), d.waitingSettings)
	return &info, nil
}

// Reject records that the courier declined a pending offer. The delivery
// itself is untouched; the rejection log excludes the courier from future
// re-offers of the same delivery.
func (d *Delivery) Reject(ctx context.Context, deliveryID, courierID int64) error {
	if !isValidID(deliveryID) {
		return ErrInvalidDeliveryID
	}
	if !isValidID(courierID) {
		return ErrInvalidCourierID
	}

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if current.Status != entities.DeliveryPending {
			return ErrInvalidState
		}

		if err := d.repository.InsertRejection(ctx, deliveryID, courierID); err != nil {
			return fmt.Errorf("record rejection: %w", err)
		}
		return nil
	})
}

// CancelForTimeout cancels a delivery whose waiting timer has expired and
// flips the owning order. Called by the periodic sweep task.
func (d *Delivery) CancelForTimeout(ctx context.Context, deliveryID int64) error {
	if !isValidID(deliveryID) {
		return ErrInvalidDeliveryID
	}

	var cancelled *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if current.Status.IsTerminal() {
			return ErrInvalidState
		}
		if current.WaitingStartedAt == nil {
			return ErrWaitingNotStarted
		}

		info := d.waitingFactory.Compute(*current.WaitingStartedAt, time.Now().UTC(), d.waitingSettings)
		if !info.IsExpired {
			return ErrWaitingNotExpired
		}

		newStatus := entities.DeliveryCancelled
		cancelled, err = d.repository.Update(ctx, entities.DeliveryModify{
			ID:     &deliveryID,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("cancel delivery: %w", err)
		}

		if err := d.orders.SetStatus(ctx, current.OrderID, entities.OrderCancelled, nil); err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if notifyErr := d.notifier.TimeoutCancelled(ctx, cancelled); notifyErr != nil {
		d.log.Error("timeout cancellation notification failed",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("error", notifyErr),
		)
	}
	return nil
}

// CancelForOrder cancels the delivery attached to a cancelled order. Already
// terminal deliveries are left alone.
func (d *Delivery) CancelForOrder(ctx context.Context, orderID int64) error {
	if !isValidID(orderID) {
		return ErrInvalidOrder
	}

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdateByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if current.Status.IsTerminal() {
			return nil
		}

		newStatus := entities.DeliveryCancelled
		if _, err := d.repository.Update(ctx, entities.DeliveryModify{
			ID:     &current.ID,
			Status: &newStatus,
		}); err != nil {
			return fmt.Errorf("cancel delivery: %w", err)
		}
		return nil
	})
}

// ExpiredWaitingDeliveries lists candidates for the timeout sweep.
func (d *Delivery) ExpiredWaitingDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	expired, err := d.repository.ListExpiredWaiting(ctx, d.waitingSettings.TimeoutMinutes)
	if err != nil {
		return nil, fmt.Errorf("list expired waiting deliveries: %w", err)
	}
	return expired, nil
}

// Rate stores the customer's one-time rating of a completed delivery.
func (d *Delivery) Rate(ctx context.Context, deliveryID int64, rating int16) error {
	if !isValidID(deliveryID) {
		return ErrInvalidDeliveryID
	}
	if !isValidRating(rating) {
		return ErrInvalidRating
	}

	return d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		if current.Status != entities.DeliveryDelivered {
			return ErrInvalidState
		}
		if current.CustomerRating != nil {
			return ErrAlreadyRated
		}

		if _, err := d.repository.Update(ctx, entities.DeliveryModify{
			ID:             &deliveryID,
			CustomerRating: &rating,
		}); err != nil {
			return fmt.Errorf("store rating: %w", err)
		}
		return nil
	})
}

func isAssignedTo(delivery *entities.Delivery, courierID int64) bool {
	return delivery.CourierID != nil && *delivery.CourierID == courierID
}
