package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой с ошибкой и паузой до неё.
type NotifyFunc func(err error, next time.Duration)

// Config экспоненциальной паузы. Повторы прекращаются по первому из лимитов:
// MaxElapsedTime, MaxRetries (0 - без лимита) или отмене контекста.
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	MaxRetries      uint64

	// nil - повторяются все ошибки
	ShouldRetry ShouldRetryFunc

	OnRetry NotifyFunc
}
