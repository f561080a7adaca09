package main

import (
	"context"
	"time"

	"github.com/tu-usuario/projectflow/internal/infrastructure/postgres"
	"github.com/tu-usuario/projectflow/pkg/config"
	"github.com/tu-usuario/projectflow/pkg/logger"
)

// Aplica el esquema completo (CREATE TABLE IF NOT EXISTS, idempotente).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	log.Info().Msg("esquema aplicado")
}
