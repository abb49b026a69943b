// Aplica las migraciones SQL pendientes y termina. Para pipelines de deploy
// donde la API arranca con DB_MIGRATE=false.
package main

import (
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("esquema al día")
}
