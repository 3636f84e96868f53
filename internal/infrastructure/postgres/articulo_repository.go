package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

const articuloColumns = `id, codigo, nombre, descripcion, categoria, unidad_medida,
	stock_actual, stock_minimo, precio_unitario, activo, createdat, updatedat`

// ArticuloRepo implementación de ArticuloRepository sobre PostgreSQL (usable con pool o tx).
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

// Crear inserta un artículo y devuelve la fila con id y timestamps asignados.
func (r *ArticuloRepo) Crear(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	query := `
		INSERT INTO articulos (codigo, nombre, descripcion, categoria, unidad_medida,
			stock_actual, stock_minimo, precio_unitario, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, createdat, updatedat`
	out := *a
	err := r.q.QueryRow(ctx, query,
		a.Codigo, a.Nombre, nullString(a.Descripcion), nullString(a.Categoria), a.UnidadMedida,
		a.StockActual, a.StockMinimo, a.PrecioUnitario, a.Activo,
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert articulo: %w", err)
	}
	return &out, nil
}

// GetByID obtiene un artículo por id; nil si no existe.
func (r *ArticuloRepo) GetByID(ctx context.Context, id int64) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetActivoForUpdate carga el artículo activo y bloquea su fila hasta el fin de
// la transacción. Serializa los movimientos concurrentes sobre el mismo artículo.
func (r *ArticuloRepo) GetActivoForUpdate(ctx context.Context, id int64) (*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + `
		FROM articulos WHERE id = $1 AND activo = true
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// Listar devuelve artículos con filtros opcionales de activo y categoría.
func (r *ArticuloRepo) Listar(ctx context.Context, f repository.FiltroArticulos) ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + ` FROM articulos WHERE 1=1`
	args := []any{}
	if f.Activo != nil {
		args = append(args, *f.Activo)
		query += fmt.Sprintf(" AND activo = $%d", len(args))
	}
	if f.Categoria != "" {
		args = append(args, f.Categoria)
		query += fmt.Sprintf(" AND categoria = $%d", len(args))
	}
	query += " ORDER BY nombre ASC"
	return r.queryMany(ctx, query, args...)
}

// Buscar busca por código, nombre o descripción entre los activos.
func (r *ArticuloRepo) Buscar(ctx context.Context, termino string) ([]*entity.Articulo, error) {
	query := `SELECT ` + articuloColumns + `
		FROM articulos
		WHERE activo = true
		  AND (codigo ILIKE $1 OR nombre ILIKE $1 OR descripcion ILIKE $1)
		ORDER BY nombre ASC`
	return r.queryMany(ctx, query, "%"+termino+"%")
}

// Actualizar modifica los datos maestros; stock_actual nunca se toca por aquí.
func (r *ArticuloRepo) Actualizar(ctx context.Context, a *entity.Articulo) (*entity.Articulo, error) {
	query := `
		UPDATE articulos
		SET codigo = $2, nombre = $3, descripcion = $4, categoria = $5,
			unidad_medida = $6, stock_minimo = $7, precio_unitario = $8,
			activo = $9, updatedat = now()
		WHERE id = $1
		RETURNING ` + articuloColumns
	row := r.q.QueryRow(ctx, query,
		a.ID, a.Codigo, a.Nombre, nullString(a.Descripcion), nullString(a.Categoria),
		a.UnidadMedida, a.StockMinimo, a.PrecioUnitario, a.Activo,
	)
	out, err := r.scanOne(row)
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	return out, err
}

// ActualizarStock escribe el nuevo saldo; exclusivo del motor de movimientos.
func (r *ArticuloRepo) ActualizarStock(ctx context.Context, id int64, stock decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE articulos SET stock_actual = $2, updatedat = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Desactivar marca el artículo como inactivo (soft delete).
func (r *ArticuloRepo) Desactivar(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE articulos SET activo = false, updatedat = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar articulo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListarStockBajo devuelve los artículos activos con stock en o bajo el mínimo,
// clasificados en la consulta y ordenados por severidad y stock ascendente.
func (r *ArticuloRepo) ListarStockBajo(ctx context.Context) ([]repository.ArticuloConNivel, error) {
	query := `
		SELECT ` + articuloColumns + `,
			CASE
				WHEN stock_actual = 0 THEN 'critico'
				WHEN stock_actual <= stock_minimo * 0.5 THEN 'bajo'
				ELSE 'alerta'
			END AS nivel
		FROM articulos
		WHERE activo = true AND stock_actual <= stock_minimo
		ORDER BY
			CASE
				WHEN stock_actual = 0 THEN 0
				WHEN stock_actual <= stock_minimo * 0.5 THEN 1
				ELSE 2
			END,
			stock_actual ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar stock bajo: %w", err)
	}
	defer rows.Close()

	var list []repository.ArticuloConNivel
	for rows.Next() {
		var fila repository.ArticuloConNivel
		var descripcion, categoria *string
		if err := rows.Scan(
			&fila.ID, &fila.Codigo, &fila.Nombre, &descripcion, &categoria, &fila.UnidadMedida,
			&fila.StockActual, &fila.StockMinimo, &fila.PrecioUnitario, &fila.Activo,
			&fila.CreatedAt, &fila.UpdatedAt, &fila.Nivel,
		); err != nil {
			return nil, fmt.Errorf("scan stock bajo: %w", err)
		}
		fila.Descripcion = deref(descripcion)
		fila.Categoria = deref(categoria)
		list = append(list, fila)
	}
	return list, rows.Err()
}

func (r *ArticuloRepo) scanOne(row pgx.Row) (*entity.Articulo, error) {
	var a entity.Articulo
	var descripcion, categoria *string
	err := row.Scan(
		&a.ID, &a.Codigo, &a.Nombre, &descripcion, &categoria, &a.UnidadMedida,
		&a.StockActual, &a.StockMinimo, &a.PrecioUnitario, &a.Activo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	a.Descripcion = deref(descripcion)
	a.Categoria = deref(categoria)
	return &a, nil
}

func (r *ArticuloRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Articulo, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articulos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		var descripcion, categoria *string
		if err := rows.Scan(
			&a.ID, &a.Codigo, &a.Nombre, &descripcion, &categoria, &a.UnidadMedida,
			&a.StockActual, &a.StockMinimo, &a.PrecioUnitario, &a.Activo, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		a.Descripcion = deref(descripcion)
		a.Categoria = deref(categoria)
		list = append(list, &a)
	}
	return list, rows.Err()
}
