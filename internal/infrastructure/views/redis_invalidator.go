// Package views implementa la señal "invalidar vista X" que emite la capa de
// mutaciones. La capa de UI decide qué significa invalidar (re-render, evict,
// refetch); aquí solo se propaga la señal de forma síncrona.
package views

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// Canal pub/sub y prefijo de claves para las representaciones cacheadas.
const (
	invalidationChannel = "views.invalidations"
	viewKeyPrefix       = "views:"
)

// RedisInvalidator borra la representación cacheada de la vista y publica la
// invalidación para los suscriptores (paneles abiertos, workers de refetch).
type RedisInvalidator struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisInvalidator conecta al Redis configurado. Falla rápido si no responde.
func NewRedisInvalidator(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisInvalidator, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisInvalidator{client: client, log: log}, nil
}

// Invalidate borra la clave de la vista y publica el nombre en el canal.
// Se ejecuta antes de que la mutación retorne; la siguiente lectura siempre
// observa el estado nuevo.
func (r *RedisInvalidator) Invalidate(ctx context.Context, view string) error {
	if err := r.client.Del(ctx, viewKeyPrefix+view).Err(); err != nil {
		return fmt.Errorf("invalidar vista %q: %w", view, err)
	}
	if err := r.client.Publish(ctx, invalidationChannel, view).Err(); err != nil {
		return fmt.Errorf("publicar invalidación %q: %w", view, err)
	}
	r.log.Debug().Str("view", view).Msg("vista invalidada")
	return nil
}

// Close libera la conexión a Redis.
func (r *RedisInvalidator) Close() error {
	return r.client.Close()
}
