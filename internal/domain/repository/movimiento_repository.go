package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/mgagro/agro-api/internal/domain/entity"
)

// FiltroMovimientos filtros opcionales del listado; se combinan con AND.
// Campos en cero = sin restricción (no "igual a null").
type FiltroMovimientos struct {
	ArticuloID *int64
	Tipo       entity.TipoMovimiento
	Desde      *time.Time
	Hasta      *time.Time
}

// MovimientoDetalle es una fila enriquecida del listado: el movimiento más el
// código/nombre del artículo y el nombre del usuario que lo registró.
type MovimientoDetalle struct {
	entity.Movimiento
	Codigo         string
	ArticuloNombre string
	UsuarioNombre  string
}

// ResumenTipo agrupa los movimientos por tipo: cuántos hubo y cuánta cantidad movieron.
type ResumenTipo struct {
	Tipo             entity.TipoMovimiento
	TotalMovimientos int64
	CantidadTotal    decimal.Decimal
}

// MovimientoRepository puerto de persistencia para el libro de movimientos.
type MovimientoRepository interface {
	// Crear inserta la entrada y devuelve el movimiento con ID y fecha asignados.
	Crear(ctx context.Context, m *entity.Movimiento) (*entity.Movimiento, error)
	GetByID(ctx context.Context, id int64) (*entity.Movimiento, error)
	// UltimoDeArticulo devuelve el movimiento más reciente del artículo
	// (fecha DESC, desempate por id DESC); nil si no tiene movimientos.
	UltimoDeArticulo(ctx context.Context, articuloID int64) (*entity.Movimiento, error)
	Eliminar(ctx context.Context, id int64) error
	Listar(ctx context.Context, f FiltroMovimientos) ([]MovimientoDetalle, error)
	// ListarPorArticulo lista los movimientos de un artículo, más recientes primero.
	// limit <= 0 significa sin tope.
	ListarPorArticulo(ctx context.Context, articuloID int64, limit int) ([]MovimientoDetalle, error)
	Resumen(ctx context.Context, desde, hasta *time.Time) ([]ResumenTipo, error)
}
