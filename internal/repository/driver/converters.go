package driver

import "delivery-service/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		VehicleType: d.VehicleType,
		CurrentCity: d.CurrentCity,
		IsActive:    d.IsActive,
		Status:      entities.DriverStatus(d.Status),
		UpdatedAt:   d.UpdatedAt,
	}
}
