package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Crear inserta la cuenta y devuelve el usuario con id y timestamps asignados.
func (r *UserRepo) Crear(ctx context.Context, u *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password, nombre, rol, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, createdat, updatedat`
	out := *u
	err := r.q.QueryRow(ctx, query, u.Email, u.Password, u.Nombre, u.Rol.String(), u.Activo).
		Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &out, nil
}

// GetByID obtiene un usuario por id; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getWhere(ctx, `id = $1`, id)
}

// GetActivoByID obtiene un usuario por id solo si está activo; nil si no.
func (r *UserRepo) GetActivoByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.getWhere(ctx, `id = $1 AND activo = true`, id)
}

// GetActivoByEmail obtiene el usuario activo con ese email; nil si no existe.
func (r *UserRepo) GetActivoByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getWhere(ctx, `email = $1 AND activo = true`, email)
}

func (r *UserRepo) getWhere(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, email, password, nombre, rol, activo, createdat, updatedat
		FROM users WHERE ` + where
	var u entity.User
	var rol string
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Password, &u.Nombre, &rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Rol = entity.Rol(rol)
	return &u, nil
}
