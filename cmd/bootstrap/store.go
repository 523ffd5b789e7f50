package bootstrap

import (
	"context"
	"log/slog"

	"countdown-timer/internal/infra/db"
	"countdown-timer/internal/infra/memstore"
	"countdown-timer/internal/infra/repository"
	"countdown-timer/internal/pkg/config"
	"countdown-timer/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewTimerRepository,
	),
)

// NewTimerRepository builds the store selected by STORE_DRIVER. The PostgreSQL pool is only
// opened, and the schema only migrated, when that driver is chosen.
func NewTimerRepository(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.TimerRepository, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		logger.Info("using in-memory timer store")
		return memstore.NewTimerStore(logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout)
	defer cancel()

	if err := db.Migrate(ctx, cfg.DB, logger); err != nil {
		return nil, err
	}
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	logger.Info("using postgres timer store", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return repository.NewTimerRepository(pool, logger), nil
}
