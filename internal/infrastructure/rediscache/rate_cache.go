// Package rediscache implementa la caché de tasas de cambio sobre Redis.
// Cada par se guarda dos veces: una clave con TTL (la tasa "fresca") y una
// clave sin expiración (última tasa conocida, respaldo cuando el proveedor
// está caído).
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/controle-venda-api/internal/application/currency"
	"github.com/tu-usuario/controle-venda-api/pkg/config"
)

var _ currency.RateCache = (*RateCache)(nil)

const (
	rateKeyPrefix  = "rate:"
	staleKeyPrefix = "rate_last:"
)

// NewClient crea el cliente Redis desde la configuración y verifica conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RateCache caché de tasas con TTL + copia stale.
type RateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRateCache construye la caché. ttl es la vigencia de la tasa fresca.
func NewRateCache(client *redis.Client, ttl time.Duration) *RateCache {
	return &RateCache{client: client, ttl: ttl}
}

// GetFresh devuelve la tasa vigente del par, si no expiró.
func (c *RateCache) GetFresh(ctx context.Context, from, to string) (decimal.Decimal, bool, error) {
	return c.get(ctx, rateKeyPrefix+pairKey(from, to))
}

// GetStale devuelve la última tasa conocida del par, sin importar antigüedad.
func (c *RateCache) GetStale(ctx context.Context, from, to string) (decimal.Decimal, bool, error) {
	return c.get(ctx, staleKeyPrefix+pairKey(from, to))
}

// Store guarda la tasa: clave fresca con TTL y copia stale sin expiración.
func (c *RateCache) Store(ctx context.Context, from, to string, rate decimal.Decimal) error {
	key := pairKey(from, to)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, rateKeyPrefix+key, rate.String(), c.ttl)
	pipe.Set(ctx, staleKeyPrefix+key, rate.String(), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("guardar tasa: %w", err)
	}
	return nil
}

func (c *RateCache) get(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("leer tasa: %w", err)
	}
	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("tasa corrupta en caché: %w", err)
	}
	return rate, true, nil
}

func pairKey(from, to string) string {
	return from + "_" + to
}
