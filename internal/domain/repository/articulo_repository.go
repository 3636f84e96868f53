package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/mgagro/agro-api/internal/domain/entity"
)

// FiltroArticulos filtros opcionales del listado; nil/"" = sin restricción.
type FiltroArticulos struct {
	Activo    *bool
	Categoria string
}

// ArticuloConNivel es una fila del reporte de stock bajo: el artículo más su
// clasificación calculada en la consulta.
type ArticuloConNivel struct {
	entity.Articulo
	Nivel string
}

// ArticuloRepository puerto de persistencia para artículos del inventario.
// ActualizarStock es exclusivo del motor de movimientos: Actualizar nunca
// escribe stock_actual, para preservar la derivación del libro.
type ArticuloRepository interface {
	Crear(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error)
	GetByID(ctx context.Context, id int64) (*entity.Articulo, error)
	// GetActivoForUpdate carga el artículo activo y bloquea su fila
	// (SELECT ... FOR UPDATE) hasta el fin de la transacción; nil si no existe o está inactivo.
	GetActivoForUpdate(ctx context.Context, id int64) (*entity.Articulo, error)
	Listar(ctx context.Context, f FiltroArticulos) ([]*entity.Articulo, error)
	Buscar(ctx context.Context, termino string) ([]*entity.Articulo, error)
	Actualizar(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error)
	ActualizarStock(ctx context.Context, id int64, stock decimal.Decimal) error
	Desactivar(ctx context.Context, id int64) error
	// ListarStockBajo devuelve los artículos activos con stock_actual <= stock_minimo,
	// clasificados y ordenados por severidad y stock ascendente.
	ListarStockBajo(ctx context.Context) ([]ArticuloConNivel, error)
}
