package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:           o.ID,
		PharmacyID:   o.PharmacyID,
		Status:       entities.OrderStatusType(o.Status),
		PaymentMode:  entities.PaymentModeType(o.PaymentMode),
		DeliveryCode: o.DeliveryCode,
		DeliveryFee:  o.DeliveryFee,
		TotalAmount:  o.TotalAmount,
		DeliveredAt:  o.DeliveredAt,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
