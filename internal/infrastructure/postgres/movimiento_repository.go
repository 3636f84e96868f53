package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

const movimientoColumns = `m.id, m.articulo_id, m.user_id, m.tipo, m.cantidad,
	m.stock_anterior, m.stock_nuevo, m.motivo, m.fecha`

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Crear inserta la entrada del libro y devuelve el movimiento con id y fecha asignados.
func (r *MovimientoRepo) Crear(ctx context.Context, m *entity.Movimiento) (*entity.Movimiento, error) {
	query := `
		INSERT INTO movimientosinventario (articulo_id, user_id, tipo, cantidad, stock_anterior, stock_nuevo, motivo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha`
	out := *m
	err := r.q.QueryRow(ctx, query,
		m.ArticuloID, m.UserID, m.Tipo.String(), m.Cantidad, m.StockAnterior, m.StockNuevo, nullString(m.Motivo),
	).Scan(&out.ID, &out.Fecha)
	if err != nil {
		return nil, fmt.Errorf("insert movimiento: %w", err)
	}
	return &out, nil
}

// GetByID obtiene un movimiento por id; nil si no existe.
func (r *MovimientoRepo) GetByID(ctx context.Context, id int64) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + ` FROM movimientosinventario m WHERE m.id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// UltimoDeArticulo devuelve el movimiento vigente del artículo (fecha DESC,
// desempate por id DESC); nil si el artículo no tiene movimientos.
func (r *MovimientoRepo) UltimoDeArticulo(ctx context.Context, articuloID int64) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoColumns + `
		FROM movimientosinventario m
		WHERE m.articulo_id = $1
		ORDER BY m.fecha DESC, m.id DESC
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(ctx, query, articuloID))
}

// Eliminar borra una entrada del libro.
func (r *MovimientoRepo) Eliminar(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM movimientosinventario WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}

// Listar devuelve los movimientos filtrados, más recientes primero, con el
// código/nombre del artículo y el nombre del usuario. LEFT JOIN sobre users:
// una entrada cuyo autor ya no existe sigue apareciendo en el listado.
func (r *MovimientoRepo) Listar(ctx context.Context, f repository.FiltroMovimientos) ([]repository.MovimientoDetalle, error) {
	query := `
		SELECT ` + movimientoColumns + `, a.codigo, a.nombre, u.nombre
		FROM movimientosinventario m
		JOIN articulos a ON a.id = m.articulo_id
		LEFT JOIN users u ON u.id = m.user_id
		WHERE 1=1`
	args := []any{}
	if f.ArticuloID != nil {
		args = append(args, *f.ArticuloID)
		query += fmt.Sprintf(" AND m.articulo_id = $%d", len(args))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo.String())
		query += fmt.Sprintf(" AND m.tipo = $%d", len(args))
	}
	if f.Desde != nil {
		args = append(args, *f.Desde)
		query += fmt.Sprintf(" AND m.fecha >= $%d", len(args))
	}
	if f.Hasta != nil {
		args = append(args, *f.Hasta)
		query += fmt.Sprintf(" AND m.fecha <= $%d", len(args))
	}
	query += " ORDER BY m.fecha DESC, m.id DESC"
	return r.queryDetalles(ctx, query, args...)
}

// ListarPorArticulo lista los movimientos de un artículo, más recientes primero.
// limit <= 0 significa sin tope.
func (r *MovimientoRepo) ListarPorArticulo(ctx context.Context, articuloID int64, limit int) ([]repository.MovimientoDetalle, error) {
	query := `
		SELECT ` + movimientoColumns + `, a.codigo, a.nombre, u.nombre
		FROM movimientosinventario m
		JOIN articulos a ON a.id = m.articulo_id
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.articulo_id = $1
		ORDER BY m.fecha DESC, m.id DESC`
	args := []any{articuloID}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return r.queryDetalles(ctx, query, args...)
}

// Resumen agrupa los movimientos por tipo en el rango dado: cuántos hubo y
// cuánta cantidad movieron.
func (r *MovimientoRepo) Resumen(ctx context.Context, desde, hasta *time.Time) ([]repository.ResumenTipo, error) {
	query := `
		SELECT tipo, COUNT(*), COALESCE(SUM(cantidad), 0)
		FROM movimientosinventario
		WHERE 1=1`
	args := []any{}
	if desde != nil {
		args = append(args, *desde)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if hasta != nil {
		args = append(args, *hasta)
		query += fmt.Sprintf(" AND fecha <= $%d", len(args))
	}
	query += " GROUP BY tipo ORDER BY tipo"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resumen movimientos: %w", err)
	}
	defer rows.Close()

	var list []repository.ResumenTipo
	for rows.Next() {
		var res repository.ResumenTipo
		var tipo string
		if err := rows.Scan(&tipo, &res.TotalMovimientos, &res.CantidadTotal); err != nil {
			return nil, fmt.Errorf("scan resumen: %w", err)
		}
		res.Tipo = entity.TipoMovimiento(tipo)
		list = append(list, res)
	}
	return list, rows.Err()
}

func (r *MovimientoRepo) scanOne(row pgx.Row) (*entity.Movimiento, error) {
	var m entity.Movimiento
	var tipo string
	var motivo *string
	err := row.Scan(
		&m.ID, &m.ArticuloID, &m.UserID, &tipo, &m.Cantidad,
		&m.StockAnterior, &m.StockNuevo, &motivo, &m.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	m.Tipo = entity.TipoMovimiento(tipo)
	m.Motivo = deref(motivo)
	return &m, nil
}

func (r *MovimientoRepo) queryDetalles(ctx context.Context, query string, args ...any) ([]repository.MovimientoDetalle, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movimientos: %w", err)
	}
	defer rows.Close()

	var list []repository.MovimientoDetalle
	for rows.Next() {
		var d repository.MovimientoDetalle
		var tipo string
		var motivo, usuarioNombre *string
		if err := rows.Scan(
			&d.ID, &d.ArticuloID, &d.UserID, &tipo, &d.Cantidad,
			&d.StockAnterior, &d.StockNuevo, &motivo, &d.Fecha,
			&d.Codigo, &d.ArticuloNombre, &usuarioNombre,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		d.Tipo = entity.TipoMovimiento(tipo)
		d.Motivo = deref(motivo)
		d.UsuarioNombre = deref(usuarioNombre)
		list = append(list, d)
	}
	return list, rows.Err()
}
