package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

var horasMax = decimal.NewFromInt(24)

// ActividadUseCase registro diario de actividades de empleados.
type ActividadUseCase struct {
	actRepo repository.ActividadRepository
	empRepo repository.EmpleadoRepository
}

// NewActividadUseCase construye el caso de uso.
func NewActividadUseCase(actRepo repository.ActividadRepository, empRepo repository.EmpleadoRepository) *ActividadUseCase {
	return &ActividadUseCase{actRepo: actRepo, empRepo: empRepo}
}

// Crear registra una actividad. Horas en (0, 24]; única por
// (empleado, fecha, descripción).
func (uc *ActividadUseCase) Crear(ctx context.Context, in dto.CrearActividadRequest) (*dto.ActividadResponse, error) {
	if in.Descripcion == "" || in.Fecha.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Horas.GreaterThan(decimal.Zero) || in.Horas.GreaterThan(horasMax) {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.empRepo.GetByID(ctx, in.EmpleadoID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	act, err := uc.actRepo.Crear(ctx, &entity.Actividad{
		EmpleadoID:    in.EmpleadoID,
		Fecha:         in.Fecha,
		Descripcion:   in.Descripcion,
		Horas:         in.Horas,
		Observaciones: in.Observaciones,
	})
	if err != nil {
		return nil, err
	}
	resp := toActividadResponse(act)
	return &resp, nil
}

// Listar devuelve actividades con filtros opcionales, enriquecidas con el
// nombre del empleado.
func (uc *ActividadUseCase) Listar(ctx context.Context, f repository.FiltroActividades) (*dto.ListaActividadesResponse, error) {
	detalles, err := uc.actRepo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListaActividadesResponse{
		Success:     true,
		Actividades: make([]dto.ActividadDetalleResponse, 0, len(detalles)),
	}
	for _, d := range detalles {
		resp.Actividades = append(resp.Actividades, dto.ActividadDetalleResponse{
			ActividadResponse: toActividadResponse(&d.Actividad),
			EmpleadoNombre:    d.EmpleadoNombre,
			EmpleadoApellido:  d.EmpleadoApellido,
		})
	}
	return resp, nil
}

// PorEmpleado lista las actividades de un empleado. Un empleado solo puede
// consultar las suyas; admin y gerente pueden consultar las de cualquiera.
func (uc *ActividadUseCase) PorEmpleado(ctx context.Context, ident entity.Identidad, empleadoID int64, desde, hasta *time.Time) ([]dto.ActividadResponse, error) {
	if !puedeVerEmpleado(ident, empleadoID) {
		return nil, domain.ErrForbidden
	}
	acts, err := uc.actRepo.ListarPorEmpleado(ctx, empleadoID, desde, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActividadResponse, 0, len(acts))
	for _, a := range acts {
		out = append(out, toActividadResponse(a))
	}
	return out, nil
}

// Actualizar modifica una actividad existente.
func (uc *ActividadUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarActividadRequest) (*dto.ActividadResponse, error) {
	if in.Descripcion == "" || in.Fecha.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Horas.GreaterThan(decimal.Zero) || in.Horas.GreaterThan(horasMax) {
		return nil, domain.ErrInvalidInput
	}
	act, err := uc.actRepo.Actualizar(ctx, &entity.Actividad{
		ID:            id,
		Fecha:         in.Fecha,
		Descripcion:   in.Descripcion,
		Horas:         in.Horas,
		Observaciones: in.Observaciones,
	})
	if err != nil {
		return nil, err
	}
	if act == nil {
		return nil, domain.ErrNotFound
	}
	resp := toActividadResponse(act)
	return &resp, nil
}

// Eliminar borra una actividad.
func (uc *ActividadUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.actRepo.Eliminar(ctx, id)
}

// puedeVerEmpleado aplica la regla "solo propio dato": admin y gerente ven
// todo; un empleado solo su propio registro.
func puedeVerEmpleado(ident entity.Identidad, empleadoID int64) bool {
	switch ident.Rol {
	case entity.RolAdmin, entity.RolGerente:
		return true
	case entity.RolEmpleado:
		return ident.EmpleadoID != nil && *ident.EmpleadoID == empleadoID
	case entity.RolUsuario:
		return false
	}
	return false
}

func toActividadResponse(a *entity.Actividad) dto.ActividadResponse {
	return dto.ActividadResponse{
		ID:            a.ID,
		EmpleadoID:    a.EmpleadoID,
		Fecha:         a.Fecha,
		Descripcion:   a.Descripcion,
		Horas:         a.Horas,
		Observaciones: a.Observaciones,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
