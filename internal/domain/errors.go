package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicateBarcode    = errors.New("código de barras duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrSessionExpired      = errors.New("sesión expirada")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUpstreamUnavailable = errors.New("proveedor externo no disponible")
)
