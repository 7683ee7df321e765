package client

import "delivery-service/pkg/jsonid"

// ID идентификатор из чужого сервиса: приходит то строкой, то числом.
type ID = jsonid.ID
