package response

import (
	"delivery-service/internal/entities"
	"delivery-service/internal/generated/dto"
)

func DeliveryToDTO(d *entities.Delivery) dto.Delivery {
	return dto.Delivery{
		DeliveryID:    d.ID,
		OrderID:       d.OrderID,
		DriverID:      d.DriverID,
		Status:        dto.DeliveryStatus(d.Status),
		PaymentStatus: dto.PaymentStatus(d.PaymentStatus),
		AssignedAt:    d.AssignedAt,
		PickedAt:      d.PickedAt,
		DeliveredAt:   d.DeliveredAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func DeliveriesToDTO(deliveries []entities.Delivery) []dto.Delivery {
	res := make([]dto.Delivery, 0, len(deliveries))
	for i := range deliveries {
		res = append(res, DeliveryToDTO(&deliveries[i]))
	}
	return res
}

func DriverToDTO(d *entities.Driver) dto.Driver {
	return dto.Driver{
		DriverID:    d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: d.VehicleType,
		CurrentCity: d.CurrentCity,
	}
}

func RestaurantToDTO(r *entities.Restaurant) dto.Restaurant {
	return dto.Restaurant{
		ID:     r.ID,
		Name:   r.Name,
		IsOpen: r.IsOpen,
		City:   r.City,
	}
}
