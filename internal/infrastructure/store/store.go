// Package store elige la implementación de persistencia según DB_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/memory"
	"github.com/jhoicas/pedidos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pedidos-api/pkg/config"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// Open devuelve el TxRunner configurado y una función para liberar recursos.
// Con PostgreSQL aplica las migraciones embebidas si DB_AUTO_MIGRATE=true.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (repository.TxRunner, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		return memory.NewStore(), func() {}, nil
	case config.DriverPostgres:
		if cfg.AutoMigrate {
			if err := postgres.Migrate(cfg.ConnectionString()); err != nil {
				return nil, nil, err
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewTxRunner(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("store: driver desconocido %q", cfg.Driver)
	}
}
