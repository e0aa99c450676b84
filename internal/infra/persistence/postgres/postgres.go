package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"apparel/config"
	"apparel/internal/domain/lifecycle"
	"apparel/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and any replicas) through go-lib, which registers
// gorm's dbresolver so reads may be served by a replica. Order placement and
// identifier allocation rely on explicit transactions from TransactionManager,
// so gorm's implicit per-statement transaction is turned off.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{db: sqlDB, logger: params.Logger, done: make(chan struct{})}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			go monitor.run(poolSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			close(monitor.done)

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor samples connection pool statistics and reports callers that
// had to wait for a connection since the previous sample.
type poolMonitor struct {
	db     *sql.DB
	logger *slog.Logger
	done   chan struct{}
}

func (m *poolMonitor) run(interval time.Duration) {
	if m.logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			cur := m.db.Stats()
			if level, attrs, waited := poolWait(prev, cur); waited {
				m.logger.LogAttrs(context.Background(), level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait compares two samples. It reports false when nobody waited in
// between; otherwise the level is Warn once the added wait time reaches
// poolWaitWarnAfter.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpen", cur.MaxOpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
