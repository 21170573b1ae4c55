package commission

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Service splits a cash-on-delivery order between the platform and the
// pharmacy. The platform keeps a percentage of the order total and the
// pharmacy wallet is credited the remainder. The remainder is computed as
// total minus the platform share, so truncation never loses a minor unit.
type Service struct {
	ledger     Ledger
	deliveries DeliveryRepository
	txManager  TxManager

	ratePercent    int64
	courierFlatFee int64
}

func New(ledger Ledger, deliveries DeliveryRepository, txManager TxManager, ratePercent, courierFlatFee int64) *Service {
	return &Service{
		ledger:         ledger,
		deliveries:     deliveries,
		txManager:      txManager,
		ratePercent:    ratePercent,
		courierFlatFee: courierFlatFee,
	}
}

// CalculateAndDistribute credits the pharmacy its share of the order total.
// With skipCourier false it also debits the courier's flat commission, for
// flows where the settlement step did not already collect it.
func (s *Service) CalculateAndDistribute(ctx context.Context, order *entities.Order, skipCourier bool) error {
	if order == nil || order.ID <= 0 || order.PharmacyID <= 0 {
		return ErrInvalidOrder
	}
	if s.ratePercent < 0 || s.ratePercent > 100 {
		return ErrInvalidRate
	}

	platformShare := order.TotalAmount * s.ratePercent / 100
	pharmacyShare := order.TotalAmount - platformShare

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if pharmacyShare > 0 {
			if _, err := s.ledger.Credit(ctx, entities.WalletMutation{
				Owner:     entities.WalletOwner{Kind: entities.OwnerPharmacy, ID: order.PharmacyID},
				Amount:    pharmacyShare,
				Category:  entities.CategoryCommission,
				Reference: fmt.Sprintf("order-%d-pharmacy-share", order.ID),
			}); err != nil {
				return fmt.Errorf("credit pharmacy share: %w", err)
			}
		}

		if skipCourier {
			return nil
		}

		delivery, err := s.deliveries.GetForUpdateByOrderID(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("find delivery for order: %w", err)
		}
		if delivery.CourierID == nil {
			return ErrDeliveryMissing
		}

		if _, err := s.ledger.Debit(ctx, entities.WalletMutation{
			Owner:      entities.WalletOwner{Kind: entities.OwnerCourier, ID: *delivery.CourierID},
			Amount:     s.courierFlatFee,
			Category:   entities.CategoryCommission,
			Reference:  fmt.Sprintf("delivery-%d-commission", delivery.ID),
			DeliveryID: &delivery.ID,
		}); err != nil {
			return fmt.Errorf("debit courier commission: %w", err)
		}
		return nil
	})
}
