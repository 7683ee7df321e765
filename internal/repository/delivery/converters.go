package delivery

import "delivery-service/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:            d.ID,
		OrderID:       d.OrderID,
		DriverID:      d.DriverID,
		Status:        entities.DeliveryStatus(d.Status),
		PaymentStatus: entities.PaymentStatus(d.PaymentStatus),
		AssignedAt:    d.AssignedAt,
		PickedAt:      d.PickedAt,
		DeliveredAt:   d.DeliveredAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		ID:          d.ID,
		OrderID:     d.OrderID,
		DriverID:    d.DriverID,
		AssignedAt:  d.AssignedAt,
		PickedAt:    d.PickedAt,
		DeliveredAt: d.DeliveredAt,
		UpdatedAt:   d.UpdatedAt,
	}

	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}
	if d.PaymentStatus != nil {
		paymentStatus := d.PaymentStatus.String()
		deliveryModifyDB.PaymentStatus = &paymentStatus
	}

	return deliveryModifyDB
}
