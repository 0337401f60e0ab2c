package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidDocument   = errors.New("documento de facturas inválido")
	ErrPayerNotFound     = errors.New("pagador no encontrado")
	ErrUnsupportedFormat = errors.New("formato no soportado")
	ErrUnauthorized      = errors.New("no autorizado")
)
