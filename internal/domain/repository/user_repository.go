package repository

import (
	"context"

	"github.com/mgagro/agro-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas de usuario.
type UserRepository interface {
	Crear(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetActivoByID devuelve el usuario solo si existe y está activo; nil si no.
	GetActivoByID(ctx context.Context, id int64) (*entity.User, error)
	// GetActivoByEmail devuelve el usuario activo con ese email; nil si no existe.
	GetActivoByEmail(ctx context.Context, email string) (*entity.User, error)
}
