package currency

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider puerto del proveedor externo de tasas de cambio. Devuelve el
// mapa de tasas multiplicativas respecto a la moneda base.
type RateProvider interface {
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// RateCache puerto de la caché de tasas. La copia fresca expira con TTL; la
// copia "stale" no expira y se usa solo cuando el proveedor está caído.
type RateCache interface {
	GetFresh(ctx context.Context, from, to string) (decimal.Decimal, bool, error)
	GetStale(ctx context.Context, from, to string) (decimal.Decimal, bool, error)
	Store(ctx context.Context, from, to string, rate decimal.Decimal) error
}
