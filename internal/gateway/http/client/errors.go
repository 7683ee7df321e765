package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound    = errors.New("remote resource not found")
	ErrUnavailable = errors.New("remote service unavailable")
)

// StatusError неуспешный HTTP-ответ удаленного сервиса.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnavailable:
		return isRetryableStatus(e.StatusCode)
	default:
		return false
	}
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
