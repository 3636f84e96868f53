package inventory

import (
	"context"

	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// ListarMovimientos devuelve los movimientos que cumplen todos los filtros
// provistos (AND), ordenados por fecha descendente. Un filtro ausente no
// restringe nada.
func (uc *MovimientoUseCase) ListarMovimientos(ctx context.Context, f repository.FiltroMovimientos) ([]dto.MovimientoDetalleResponse, error) {
	if f.Tipo != "" && entity.ParseTipoMovimiento(f.Tipo.String()) == "" {
		return nil, domain.ErrTipoMovimiento
	}
	detalles, err := uc.movRepo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoDetalleResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, toMovimientoDetalleResponse(d))
	}
	return out, nil
}

// MovimientosPorArticulo lista los movimientos de un artículo, más recientes
// primero, con tope opcional (limit <= 0 = sin tope).
func (uc *MovimientoUseCase) MovimientosPorArticulo(ctx context.Context, articuloID int64, limit int) ([]dto.MovimientoDetalleResponse, error) {
	detalles, err := uc.movRepo.ListarPorArticulo(ctx, articuloID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoDetalleResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, toMovimientoDetalleResponse(d))
	}
	return out, nil
}

// ResumenMovimientos agrupa por tipo (total de movimientos y cantidad movida)
// en el rango de fechas opcional. Solo administradores.
func (uc *MovimientoUseCase) ResumenMovimientos(ctx context.Context, ident entity.Identidad, f repository.FiltroMovimientos) ([]dto.ResumenTipoResponse, error) {
	if !ident.Rol.EsAdmin() {
		return nil, domain.ErrForbidden
	}
	grupos, err := uc.movRepo.Resumen(ctx, f.Desde, f.Hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResumenTipoResponse, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, dto.ResumenTipoResponse{
			Tipo:             g.Tipo.String(),
			TotalMovimientos: g.TotalMovimientos,
			CantidadTotal:    g.CantidadTotal,
		})
	}
	return out, nil
}
