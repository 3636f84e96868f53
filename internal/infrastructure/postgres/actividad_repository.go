package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

var _ repository.ActividadRepository = (*ActividadRepo)(nil)

// ActividadRepo implementación de ActividadRepository sobre PostgreSQL (usable con pool o tx).
type ActividadRepo struct {
	q Querier
}

// NewActividadRepository construye el adaptador de actividades. Pasar pool o tx (Querier).
func NewActividadRepository(q Querier) *ActividadRepo {
	return &ActividadRepo{q: q}
}

// Crear inserta una actividad; ErrDuplicate si ya existe una igual para ese
// empleado y fecha.
func (r *ActividadRepo) Crear(ctx context.Context, a *entity.Actividad) (*entity.Actividad, error) {
	query := `
		INSERT INTO actividades (empleado_id, fecha, descripcion, horas, observaciones)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, createdat, updatedat`
	out := *a
	err := r.q.QueryRow(ctx, query,
		a.EmpleadoID, a.Fecha, a.Descripcion, a.Horas, nullString(a.Observaciones),
	).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert actividad: %w", err)
	}
	return &out, nil
}

// GetByID obtiene una actividad por id; nil si no existe.
func (r *ActividadRepo) GetByID(ctx context.Context, id int64) (*entity.Actividad, error) {
	query := `
		SELECT id, empleado_id, fecha, descripcion, horas, observaciones, createdat, updatedat
		FROM actividades WHERE id = $1`
	return scanActividad(r.q.QueryRow(ctx, query, id))
}

// Listar devuelve actividades filtradas, más recientes primero, con el nombre
// del empleado.
func (r *ActividadRepo) Listar(ctx context.Context, f repository.FiltroActividades) ([]repository.ActividadDetalle, error) {
	query := `
		SELECT a.id, a.empleado_id, a.fecha, a.descripcion, a.horas, a.observaciones,
			a.createdat, a.updatedat, e.nombre, e.apellido
		FROM actividades a
		JOIN empleados e ON e.id = a.empleado_id
		WHERE 1=1`
	args := []any{}
	if f.EmpleadoID != nil {
		args = append(args, *f.EmpleadoID)
		query += fmt.Sprintf(" AND a.empleado_id = $%d", len(args))
	}
	if f.Desde != nil {
		args = append(args, *f.Desde)
		query += fmt.Sprintf(" AND a.fecha >= $%d", len(args))
	}
	if f.Hasta != nil {
		args = append(args, *f.Hasta)
		query += fmt.Sprintf(" AND a.fecha <= $%d", len(args))
	}
	query += " ORDER BY a.fecha DESC, a.id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar actividades: %w", err)
	}
	defer rows.Close()

	var list []repository.ActividadDetalle
	for rows.Next() {
		var d repository.ActividadDetalle
		var observaciones *string
		if err := rows.Scan(
			&d.ID, &d.EmpleadoID, &d.Fecha, &d.Descripcion, &d.Horas, &observaciones,
			&d.CreatedAt, &d.UpdatedAt, &d.EmpleadoNombre, &d.EmpleadoApellido,
		); err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		d.Observaciones = deref(observaciones)
		list = append(list, d)
	}
	return list, rows.Err()
}

// ListarPorEmpleado lista las actividades de un empleado en el rango dado,
// más recientes primero.
func (r *ActividadRepo) ListarPorEmpleado(ctx context.Context, empleadoID int64, desde, hasta *time.Time) ([]*entity.Actividad, error) {
	query := `
		SELECT id, empleado_id, fecha, descripcion, horas, observaciones, createdat, updatedat
		FROM actividades WHERE empleado_id = $1`
	args := []any{empleadoID}
	if desde != nil {
		args = append(args, *desde)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if hasta != nil {
		args = append(args, *hasta)
		query += fmt.Sprintf(" AND fecha <= $%d", len(args))
	}
	query += " ORDER BY fecha DESC, id DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar actividades de empleado: %w", err)
	}
	defer rows.Close()

	var list []*entity.Actividad
	for rows.Next() {
		var a entity.Actividad
		var observaciones *string
		if err := rows.Scan(
			&a.ID, &a.EmpleadoID, &a.Fecha, &a.Descripcion, &a.Horas, &observaciones,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan actividad: %w", err)
		}
		a.Observaciones = deref(observaciones)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Actualizar modifica una actividad existente; nil si no existe.
func (r *ActividadRepo) Actualizar(ctx context.Context, a *entity.Actividad) (*entity.Actividad, error) {
	query := `
		UPDATE actividades
		SET fecha = $2, descripcion = $3, horas = $4, observaciones = $5, updatedat = now()
		WHERE id = $1
		RETURNING id, empleado_id, fecha, descripcion, horas, observaciones, createdat, updatedat`
	out, err := scanActividad(r.q.QueryRow(ctx, query,
		a.ID, a.Fecha, a.Descripcion, a.Horas, nullString(a.Observaciones)))
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	return out, err
}

// Eliminar borra una actividad; ErrNotFound si no existe.
func (r *ActividadRepo) Eliminar(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM actividades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete actividad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanActividad(row pgx.Row) (*entity.Actividad, error) {
	var a entity.Actividad
	var observaciones *string
	err := row.Scan(
		&a.ID, &a.EmpleadoID, &a.Fecha, &a.Descripcion, &a.Horas, &observaciones,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get actividad: %w", err)
	}
	a.Observaciones = deref(observaciones)
	return &a, nil
}
