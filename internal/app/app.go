package app

import (
	"delivery-service/internal/handlers/rest/deliveries_get"
	"delivery-service/internal/handlers/rest/delivery_post"
	"delivery-service/internal/handlers/rest/delivery_status_put"
	"delivery-service/internal/handlers/rest/health_get"
	"delivery-service/pkg/background"
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	Store             health_get.Pinger
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	deliveries_get.Service
	delivery_post.Service
	delivery_status_put.Service
}
