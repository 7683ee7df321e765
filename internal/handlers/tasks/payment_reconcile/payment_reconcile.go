//go:generate mockgen -source=payment_reconcile.go -destination=./payment_reconcile_mocks_test.go -package=payment_reconcile_test
package payment_reconcile

import (
	"context"
	"time"

	"delivery-service/pkg/logger"
)

type Service interface {
	ReconcilePayments(ctx context.Context) (int64, error)
}

// PaymentReconcile повторяет синхронизацию оплаты для доставленных заказов, оставшихся PENDING.
type PaymentReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPaymentReconcile(log logger.Logger, service Service, interval time.Duration) *PaymentReconcile {
	return &PaymentReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	synced, err := p.service.ReconcilePayments(ctxWithTimeout)

	if synced > 0 {
		p.log.With(
			logger.NewField("synced_payments", synced),
		).Info("payments reconciled")
	}

	return err
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}
