package backoff_adapter

import (
	"context"
	"time"

	"delivery-service/pkg/retrier"

	"github.com/cenkalti/backoff/v4"
)

// Retrier retrier.Retrier поверх cenkalti/backoff.
type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	return backoff.RetryNotify(r.operation(ctx, fn), r.policy(ctx), r.notify())
}

func (r *Retrier) policy(ctx context.Context) backoff.BackOff {
	var b backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxRetries)
	}
	return backoff.WithContext(b, ctx)
}

func (r *Retrier) operation(ctx context.Context, fn func(context.Context) error) backoff.Operation {
	shouldRetry := r.config.ShouldRetry
	return func() error {
		err := fn(ctx)
		if err != nil && shouldRetry != nil && !shouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}
}

func (r *Retrier) notify() backoff.Notify {
	if r.config.OnRetry == nil {
		return nil
	}
	return func(err error, next time.Duration) {
		r.config.OnRetry(err, next)
	}
}
