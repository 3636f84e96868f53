package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

var _ repository.EmpleadoRepository = (*EmpleadoRepo)(nil)

const empleadoColumns = `id, user_id, nombre, apellido, documento, telefono, email,
	direccion, fecha_ingreso, puesto, salario, activo, createdat, updatedat`

// auditProbe cachea si el esquema tiene las columnas de auditoría
// created_by/updated_by. Se sondea una sola vez por proceso, no por llamada:
// un esquema no cambia en caliente.
var auditProbe struct {
	once sync.Once
	ok   bool
}

// EmpleadoRepo implementación de EmpleadoRepository sobre PostgreSQL (usable con pool o tx).
type EmpleadoRepo struct {
	q Querier
}

// NewEmpleadoRepository construye el adaptador de empleados. Pasar pool o tx (Querier).
func NewEmpleadoRepository(q Querier) *EmpleadoRepo {
	return &EmpleadoRepo{q: q}
}

func (r *EmpleadoRepo) tieneAuditoria(ctx context.Context) bool {
	auditProbe.once.Do(func() {
		var n int
		err := r.q.QueryRow(ctx, `
			SELECT COUNT(*) FROM information_schema.columns
			WHERE table_name = 'empleados' AND column_name IN ('created_by', 'updated_by')`,
		).Scan(&n)
		auditProbe.ok = err == nil && n == 2
	})
	return auditProbe.ok
}

// Crear inserta el empleado. creadoPor llena created_by/updated_by solo si el
// esquema tiene esas columnas; en esquemas sin ellas se ignora.
func (r *EmpleadoRepo) Crear(ctx context.Context, e *entity.Empleado, creadoPor *int64) (*entity.Empleado, error) {
	out := *e
	var err error
	if r.tieneAuditoria(ctx) {
		query := `
			INSERT INTO empleados (user_id, nombre, apellido, documento, telefono, email,
				direccion, fecha_ingreso, puesto, salario, activo, created_by, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
			RETURNING id, createdat, updatedat`
		err = r.q.QueryRow(ctx, query,
			e.UserID, e.Nombre, e.Apellido, nullString(e.Documento), nullString(e.Telefono),
			nullString(e.Email), nullString(e.Direccion), e.FechaIngreso, nullString(e.Puesto),
			e.Salario, e.Activo, creadoPor,
		).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	} else {
		query := `
			INSERT INTO empleados (user_id, nombre, apellido, documento, telefono, email,
				direccion, fecha_ingreso, puesto, salario, activo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, createdat, updatedat`
		err = r.q.QueryRow(ctx, query,
			e.UserID, e.Nombre, e.Apellido, nullString(e.Documento), nullString(e.Telefono),
			nullString(e.Email), nullString(e.Direccion), e.FechaIngreso, nullString(e.Puesto),
			e.Salario, e.Activo,
		).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	}
	if err != nil {
		if isUniqueViolation(err) {
			if strings.Contains(constraintName(err), "documento") {
				return nil, domain.ErrDocumentoDuplicado
			}
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert empleado: %w", err)
	}
	return &out, nil
}

// GetByID obtiene un empleado por id; nil si no existe.
func (r *EmpleadoRepo) GetByID(ctx context.Context, id int64) (*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByUserID obtiene el empleado enlazado a una cuenta de usuario; nil si no hay.
func (r *EmpleadoRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados WHERE user_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, userID))
}

// Listar devuelve empleados, con filtro opcional de activo, por apellido y nombre.
func (r *EmpleadoRepo) Listar(ctx context.Context, activo *bool) ([]*entity.Empleado, error) {
	query := `SELECT ` + empleadoColumns + ` FROM empleados`
	args := []any{}
	if activo != nil {
		args = append(args, *activo)
		query += " WHERE activo = $1"
	}
	query += " ORDER BY apellido ASC, nombre ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Actualizar modifica un empleado existente; nil si no existe.
func (r *EmpleadoRepo) Actualizar(ctx context.Context, e *entity.Empleado) (*entity.Empleado, error) {
	query := `
		UPDATE empleados
		SET nombre = $2, apellido = $3, documento = $4, telefono = $5, email = $6,
			direccion = $7, fecha_ingreso = $8, puesto = $9, salario = $10,
			activo = $11, updatedat = now()
		WHERE id = $1
		RETURNING ` + empleadoColumns
	row := r.q.QueryRow(ctx, query,
		e.ID, e.Nombre, e.Apellido, nullString(e.Documento), nullString(e.Telefono),
		nullString(e.Email), nullString(e.Direccion), e.FechaIngreso, nullString(e.Puesto),
		e.Salario, e.Activo,
	)
	out, err := r.scanOne(row)
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDocumentoDuplicado
	}
	return out, err
}

// Desactivar marca el empleado como inactivo (soft delete).
func (r *EmpleadoRepo) Desactivar(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE empleados SET activo = false, updatedat = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar empleado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EmpleadoRepo) scanOne(row pgx.Row) (*entity.Empleado, error) {
	e, err := scanEmpleado(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func scanEmpleado(row pgx.Row) (*entity.Empleado, error) {
	var e entity.Empleado
	var documento, telefono, email, direccion, puesto *string
	err := row.Scan(
		&e.ID, &e.UserID, &e.Nombre, &e.Apellido, &documento, &telefono, &email,
		&direccion, &e.FechaIngreso, &puesto, &e.Salario, &e.Activo, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan empleado: %w", err)
	}
	e.Documento = deref(documento)
	e.Telefono = deref(telefono)
	e.Email = deref(email)
	e.Direccion = deref(direccion)
	e.Puesto = deref(puesto)
	return &e, nil
}
