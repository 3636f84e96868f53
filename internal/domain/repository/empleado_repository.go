package repository

import (
	"context"

	"github.com/mgagro/agro-api/internal/domain/entity"
)

// EmpleadoRepository puerto de persistencia para empleados.
type EmpleadoRepository interface {
	// Crear inserta el empleado. creadoPor llena las columnas de auditoría
	// created_by/updated_by solo si el esquema las tiene (ver sonda de capacidades
	// del adaptador); se ignora en esquemas sin ellas.
	Crear(ctx context.Context, e *entity.Empleado, creadoPor *int64) (*entity.Empleado, error)
	GetByID(ctx context.Context, id int64) (*entity.Empleado, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Empleado, error)
	Listar(ctx context.Context, activo *bool) ([]*entity.Empleado, error)
	Actualizar(ctx context.Context, e *entity.Empleado) (*entity.Empleado, error)
	Desactivar(ctx context.Context, id int64) error
}
