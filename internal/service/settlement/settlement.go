package settlement

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/delivery"
	"dispatch/pkg/logger"
)

// Coordinator completes a delivery as one atomic unit: delivery and order
// status mutation plus the courier's earning credit and commission debit all
// commit together or not at all. The delivery row lock is what makes two
// concurrent completion attempts produce exactly one success.
type Coordinator struct {
	deliveries DeliveryRepository
	orders     OrderRepository
	ledger     Ledger
	commission CommissionService
	notifier   Notifier
	txManager  TxManager
	log        logger.Logger

	commissionAmount int64
}

func New(
	deliveries DeliveryRepository,
	orders OrderRepository,
	ledger Ledger,
	commission CommissionService,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
	commissionAmount int64,
) *Coordinator {
	return &Coordinator{
		deliveries:       deliveries,
		orders:           orders,
		ledger:           ledger,
		commission:       commission,
		notifier:         notifier,
		txManager:        txManager,
		log:              log,
		commissionAmount: commissionAmount,
	}
}

// Deliver finalizes the delivery after the courier hands the order over.
// The confirmation code must match the one stored on the order. The courier
// is credited the delivery fee and debited the flat commission; a courier who
// cannot cover the commission cannot complete the delivery.
func (c *Coordinator) Deliver(ctx context.Context, deliveryID, courierID int64, confirmationCode string) (*entities.Settlement, error) {
	if deliveryID <= 0 {
		return nil, ErrInvalidDeliveryID
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if confirmationCode == "" {
		return nil, ErrEmptyCode
	}

	var (
		settled   *entities.Settlement
		order     *entities.Order
		completed *entities.Delivery
	)
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := c.deliveries.GetForUpdate(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		// A delivery assigned to another courier is invisible to the caller.
		if current.CourierID == nil || *current.CourierID != courierID {
			return delivery.ErrDeliveryNotFound
		}
		if current.Status == entities.DeliveryDelivered {
			return ErrAlreadyCompleted
		}
		if !current.Status.AllowsDeliver() {
			return ErrInvalidState
		}

		order, err = c.orders.GetByID(ctx, current.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.DeliveryCode != confirmationCode {
			return ErrInvalidCode
		}

		owner := entities.WalletOwner{Kind: entities.OwnerCourier, ID: courierID}
		affordable, err := c.ledger.CanAfford(ctx, owner, c.commissionAmount)
		if err != nil {
			return fmt.Errorf("check courier balance: %w", err)
		}
		if !affordable {
			return ErrInsufficientBalance
		}

		now := time.Now().UTC()
		newStatus := entities.DeliveryDelivered
		completed, err = c.deliveries.Update(ctx, entities.DeliveryModify{
			ID:          &deliveryID,
			Status:      &newStatus,
			DeliveredAt: &now,
		})
		if err != nil {
			return fmt.Errorf("complete delivery: %w", err)
		}

		if err := c.orders.SetStatus(ctx, order.ID, entities.OrderDelivered, &now); err != nil {
			return fmt.Errorf("complete order: %w", err)
		}

		if current.DeliveryFee > 0 {
			if _, err := c.ledger.Credit(ctx, entities.WalletMutation{
				Owner:      owner,
				Amount:     current.DeliveryFee,
				Category:   entities.CategoryDeliveryEarning,
				Reference:  fmt.Sprintf("delivery-%d-earning", deliveryID),
				DeliveryID: &deliveryID,
			}); err != nil {
				return fmt.Errorf("credit delivery earning: %w", err)
			}
		}

		debit, err := c.ledger.Debit(ctx, entities.WalletMutation{
			Owner:      owner,
			Amount:     c.commissionAmount,
			Category:   entities.CategoryCommission,
			Reference:  fmt.Sprintf("delivery-%d-commission", deliveryID),
			DeliveryID: &deliveryID,
		})
		if err != nil {
			return fmt.Errorf("debit commission: %w", err)
		}

		settled = &entities.Settlement{
			DeliveryID:       deliveryID,
			OrderID:          order.ID,
			CourierID:        courierID,
			EarningAmount:    current.DeliveryFee,
			CommissionAmount: c.commissionAmount,
			NetEarning:       current.DeliveryFee - c.commissionAmount,
			NewBalance:       debit.BalanceAfter,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Side effects after commit are best effort. The completed settlement
	// must never be rolled back because a downstream consumer is unavailable.
	if notifyErr := c.notifier.Delivered(ctx, order, completed); notifyErr != nil {
		c.log.Error("delivery completion notification failed",
			logger.NewField("delivery_id", deliveryID),
			logger.NewField("error", notifyErr),
		)
	}

	if order.PaymentMode == entities.PaymentCash {
		if commissionErr := c.commission.CalculateAndDistribute(ctx, order, true); commissionErr != nil {
			c.log.Error("cash commission distribution failed",
				logger.NewField("order_id", order.ID),
				logger.NewField("error", commissionErr),
			)
		}
	}

	return settled, nil
}
