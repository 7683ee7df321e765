package tx

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакции pgx через go-transaction-manager.
// Вложенный Do присоединяется к уже открытой во внешнем контексте транзакции.
type Manager struct {
	internal *manager.Manager
	settings pgxv5.Settings
}

type options struct {
	isoLevel pgx.TxIsoLevel
	timeout  time.Duration
}

type Option func(*options)

// WithIsoLevel задает уровень изоляции. По умолчанию READ COMMITTED:
// захват водителя построен на FOR UPDATE SKIP LOCKED.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(o *options) {
		o.isoLevel = level
	}
}

// WithTimeout ограничивает длительность транзакции, 0 - без ограничения.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	o := options{isoLevel: pgx.ReadCommitted}
	for _, opt := range opts {
		opt(&o)
	}

	var base []settings.Opt
	if o.timeout > 0 {
		base = append(base, settings.WithTimeout(o.timeout))
	}

	txSettings := pgxv5.MustSettings(
		settings.Must(base...),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: o.isoLevel}),
	)

	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		settings: txSettings,
	}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.internal.DoWithSettings(ctx, m.settings, fn)
}
