package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// EmpleadoTxRunner transacción para el alta de empleados: el usuario y el
// registro de empleado se crean juntos o no se crea ninguno.
type EmpleadoTxRunner interface {
	RunEmpleado(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		empRepo repository.EmpleadoRepository,
	) error) error
}

// EmpleadoUseCase CRUD de empleados. El alta crea además la cuenta de usuario
// asociada (rol empleado) en la misma transacción.
type EmpleadoUseCase struct {
	txRunner EmpleadoTxRunner
	empRepo  repository.EmpleadoRepository // atado al pool; rutas de lectura y updates simples
}

// NewEmpleadoUseCase construye el caso de uso.
func NewEmpleadoUseCase(txRunner EmpleadoTxRunner, empRepo repository.EmpleadoRepository) *EmpleadoUseCase {
	return &EmpleadoUseCase{txRunner: txRunner, empRepo: empRepo}
}

// Crear da de alta empleado + usuario atómicamente. El password se hashea con
// bcrypt; el email es obligatorio porque identifica la cuenta. creadoPor llena
// la auditoría si el esquema la soporta.
func (uc *EmpleadoUseCase) Crear(ctx context.Context, ident entity.Identidad, in dto.CrearEmpleadoRequest) (*dto.CrearEmpleadoResponse, error) {
	if in.Email == "" || in.Password == "" || in.Nombre == "" || in.Apellido == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaIngreso.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var (
		user     *entity.User
		empleado *entity.Empleado
	)
	err = uc.txRunner.RunEmpleado(ctx, func(
		userRepo repository.UserRepository,
		empRepo repository.EmpleadoRepository,
	) error {
		user, err = userRepo.Crear(ctx, &entity.User{
			Email:    in.Email,
			Password: string(hash),
			Nombre:   in.Nombre + " " + in.Apellido,
			Rol:      entity.RolEmpleado,
			Activo:   true,
		})
		if err != nil {
			return err
		}
		empleado, err = empRepo.Crear(ctx, &entity.Empleado{
			UserID:       &user.ID,
			Nombre:       in.Nombre,
			Apellido:     in.Apellido,
			Documento:    in.Documento,
			Telefono:     in.Telefono,
			Email:        in.Email,
			Direccion:    in.Direccion,
			FechaIngreso: in.FechaIngreso,
			Puesto:       in.Puesto,
			Salario:      in.Salario,
			Activo:       true,
		}, &ident.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.CrearEmpleadoResponse{
		Success: true,
		Message: "Empleado y usuario creados correctamente",
	}
	resp.Data.Empleado = toEmpleadoResponse(empleado)
	resp.Data.Usuario = dto.UsuarioResponse{
		ID:     user.ID,
		Email:  user.Email,
		Nombre: user.Nombre,
		Rol:    user.Rol.String(),
		Activo: user.Activo,
	}
	return resp, nil
}

// Listar devuelve empleados, con filtro opcional de activo.
func (uc *EmpleadoUseCase) Listar(ctx context.Context, activo *bool) ([]dto.EmpleadoResponse, error) {
	emps, err := uc.empRepo.Listar(ctx, activo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, toEmpleadoResponse(e))
	}
	return out, nil
}

// GetByID obtiene un empleado por id.
func (uc *EmpleadoUseCase) GetByID(ctx context.Context, id int64) (*dto.EmpleadoResponse, error) {
	emp, err := uc.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmpleadoResponse(emp)
	return &resp, nil
}

// Actualizar modifica un empleado existente.
func (uc *EmpleadoUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if in.Nombre == "" || in.Apellido == "" {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.empRepo.Actualizar(ctx, &entity.Empleado{
		ID:           id,
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Documento:    in.Documento,
		Telefono:     in.Telefono,
		Email:        in.Email,
		Direccion:    in.Direccion,
		FechaIngreso: in.FechaIngreso,
		Puesto:       in.Puesto,
		Salario:      in.Salario,
		Activo:       in.Activo,
	})
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmpleadoResponse(emp)
	return &resp, nil
}

// Desactivar marca el empleado como inactivo (soft delete).
func (uc *EmpleadoUseCase) Desactivar(ctx context.Context, id int64) error {
	return uc.empRepo.Desactivar(ctx, id)
}

func toEmpleadoResponse(e *entity.Empleado) dto.EmpleadoResponse {
	return dto.EmpleadoResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Nombre:       e.Nombre,
		Apellido:     e.Apellido,
		Documento:    e.Documento,
		Telefono:     e.Telefono,
		Email:        e.Email,
		Direccion:    e.Direccion,
		FechaIngreso: e.FechaIngreso,
		Puesto:       e.Puesto,
		Salario:      e.Salario,
		Activo:       e.Activo,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
