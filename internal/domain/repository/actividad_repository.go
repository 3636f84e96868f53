package repository

import (
	"context"
	"time"

	"github.com/mgagro/agro-api/internal/domain/entity"
)

// FiltroActividades filtros opcionales del listado de actividades (AND).
type FiltroActividades struct {
	EmpleadoID *int64
	Desde      *time.Time
	Hasta      *time.Time
}

// ActividadDetalle fila enriquecida con el nombre del empleado.
type ActividadDetalle struct {
	entity.Actividad
	EmpleadoNombre   string
	EmpleadoApellido string
}

// ActividadRepository puerto de persistencia para el registro diario de actividades.
type ActividadRepository interface {
	Crear(ctx context.Context, a *entity.Actividad) (*entity.Actividad, error)
	GetByID(ctx context.Context, id int64) (*entity.Actividad, error)
	Listar(ctx context.Context, f FiltroActividades) ([]ActividadDetalle, error)
	ListarPorEmpleado(ctx context.Context, empleadoID int64, desde, hasta *time.Time) ([]*entity.Actividad, error)
	Actualizar(ctx context.Context, a *entity.Actividad) (*entity.Actividad, error)
	Eliminar(ctx context.Context, id int64) error
}
