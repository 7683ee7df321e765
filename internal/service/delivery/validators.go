package delivery

import (
	"strings"

	"delivery-service/internal/entities"
)

// допустимые переходы статуса, DELIVERED терминальный
var transitions = map[entities.DeliveryStatus]entities.DeliveryStatus{
	entities.DeliveryAssigned: entities.DeliveryPicked,
	entities.DeliveryPicked:   entities.DeliveryDelivered,
}

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidDeliveryID(id int64) bool {
	return id > 0
}

func parseStatus(status string) (entities.DeliveryStatus, bool) {
	s := entities.DeliveryStatus(strings.ToUpper(strings.TrimSpace(status)))
	switch s {
	case entities.DeliveryAssigned, entities.DeliveryPicked, entities.DeliveryDelivered:
		return s, true
	default:
		return "", false
	}
}

func canTransition(from, to entities.DeliveryStatus) bool {
	next, ok := transitions[from]
	return ok && next == to
}
