package postgres

import (
	"context"
	"log/slog"

	"marketbot/config"
	"marketbot/internal/domain/lifecycle"
	"marketbot/internal/errors"
	"marketbot/internal/infra/metrics"
	"marketbot/internal/infra/persistence/model"

	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// auditDBName labels the pool collectors on /metrics.
const auditDBName = "audit"

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New creates the audit store client. It returns a nil *gorm.DB when no
// postgres section is configured; the broadcast repository then drops audit rows.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Postgres not configured, broadcast audit disabled")

		return nil, nil
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Broadcast rows and their logs are written in one explicit transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		// Pool saturation shows up as go_sql_wait_count_total{db_name="audit"}.
		if err := params.Metrics.Registry().Register(collectors.NewDBStatsCollector(sqlDB, auditDBName)); err != nil {
			return nil, errors.Wrap(err, "failed to register audit pool metrics")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.BroadcastModel{}, &model.DeliveryLogModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate audit tables")
			}

			params.Logger.Info("[Audit] Postgres ready", slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}
