package delivery

import "dispatch/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:                 d.ID,
		OrderID:            d.OrderID,
		CourierID:          d.CourierID,
		Status:             entities.DeliveryStatusType(d.Status),
		PickupLat:          d.PickupLat,
		PickupLon:          d.PickupLon,
		DropoffLat:         d.DropoffLat,
		DropoffLon:         d.DropoffLon,
		EstimatedDistanceM: d.EstimatedDistanceM,
		DeliveryFee:        d.DeliveryFee,
		WaitingStartedAt:   d.WaitingStartedAt,
		PickedUpAt:         d.PickedUpAt,
		DeliveredAt:        d.DeliveredAt,
		CustomerRating:     d.CustomerRating,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func ToDomainList(models []DeliveryDB) []entities.Delivery {
	deliveries := make([]entities.Delivery, 0, len(models))
	for i := range models {
		deliveries = append(deliveries, *ToDomain(&models[i]))
	}
	return deliveries
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		ID:               d.ID,
		CourierID:        d.CourierID,
		WaitingStartedAt: d.WaitingStartedAt,
		PickedUpAt:       d.PickedUpAt,
		DeliveredAt:      d.DeliveredAt,
		CustomerRating:   d.CustomerRating,
	}

	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}

	return deliveryModifyDB
}
