package currency

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/controle-venda-api/internal/application/dto"
	"github.com/tu-usuario/controle-venda-api/internal/domain"
	"github.com/tu-usuario/controle-venda-api/internal/domain/entity"
	"github.com/tu-usuario/controle-venda-api/pkg/logger"
)

// ConvertUseCase conversión de moneda delegando la tasa al proveedor externo,
// con caché (TTL) y fallback a la última tasa conocida si el proveedor falla.
type ConvertUseCase struct {
	provider RateProvider
	cache    RateCache
	log      *logger.Logger
}

// NewConvertUseCase construye el caso de uso.
func NewConvertUseCase(provider RateProvider, cache RateCache, log *logger.Logger) *ConvertUseCase {
	return &ConvertUseCase{provider: provider, cache: cache, log: log}
}

// Convert valida y convierte: converted_amount = amount * rate.
// Devuelve ErrInvalidInput con amount <= 0 o códigos fuera del conjunto
// soportado, y ErrUpstreamUnavailable si el proveedor falla y no hay tasa
// cacheada que sirva de respaldo.
func (uc *ConvertUseCase) Convert(ctx context.Context, in dto.ConvertRequest) (*dto.ConvertResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsSupportedCurrency(in.FromCurrency) || !entity.IsSupportedCurrency(in.ToCurrency) {
		return nil, domain.ErrInvalidInput
	}

	rate, err := uc.lookupRate(ctx, in.FromCurrency, in.ToCurrency)
	if err != nil {
		return nil, err
	}

	return &dto.ConvertResponse{
		Amount:          in.Amount,
		FromCurrency:    in.FromCurrency,
		ToCurrency:      in.ToCurrency,
		ConvertedAmount: in.Amount.Mul(rate).Round(2),
		Rate:            rate,
	}, nil
}

// Rates devuelve las tasas del proveedor para la moneda base (passthrough).
func (uc *ConvertUseCase) Rates(ctx context.Context, base string) (*dto.RatesResponse, error) {
	if !entity.IsSupportedCurrency(base) {
		return nil, domain.ErrInvalidInput
	}
	rates, err := uc.provider.FetchRates(ctx, base)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}
	return &dto.RatesResponse{Base: base, Rates: rates}, nil
}

// lookupRate resuelve la tasa: caché fresca -> proveedor -> caché stale.
func (uc *ConvertUseCase) lookupRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if cached, ok, cacheErr := uc.cache.GetFresh(ctx, from, to); cacheErr == nil && ok {
		return cached, nil
	}

	rates, provErr := uc.provider.FetchRates(ctx, from)
	if provErr == nil {
		fetched, ok := rates[to]
		if !ok {
			return decimal.Zero, domain.ErrInvalidInput
		}
		if storeErr := uc.cache.Store(ctx, from, to, fetched); storeErr != nil {
			uc.log.Warn().Err(storeErr).Str("from", from).Str("to", to).Msg("no se pudo cachear la tasa")
		}
		return fetched, nil
	}

	// Proveedor caído: última tasa conocida aunque esté vencida.
	if stale, ok, cacheErr := uc.cache.GetStale(ctx, from, to); cacheErr == nil && ok {
		uc.log.Warn().Err(provErr).Str("from", from).Str("to", to).Msg("proveedor de tasas caído, usando tasa vencida")
		return stale, nil
	}
	return decimal.Zero, domain.ErrUpstreamUnavailable
}
