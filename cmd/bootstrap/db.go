package bootstrap

import (
	"context"

	"laundry-backoffice/internal/infra/db"
	"laundry-backoffice/internal/infra/migrations"
	"laundry-backoffice/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
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

	return pool, nil
}

// RunMigrations applies pending migrations on start when DB_AUTO_MIGRATE is set.
func RunMigrations(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool) {
	if !cfg.DB.AutoMigrate {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrations.UpFromPool(ctx, pool)
		},
	})
}
