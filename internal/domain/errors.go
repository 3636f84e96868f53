package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDocumentoDuplicado = errors.New("el documento ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Reglas de negocio del libro de movimientos.
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrAjusteInvalido    = errors.New("el ajuste no puede resultar en stock negativo")
	ErrTipoMovimiento    = errors.New("tipo de movimiento inválido")
	ErrUltimoMovimiento  = errors.New("no se puede eliminar el último movimiento del artículo")
)
