package inventory

import (
	"context"

	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// AlertasUseCase evalúa los niveles de stock de todos los artículos activos.
// Es una proyección pura sobre el estado actual: sin bloqueos, tolera escrituras
// concurrentes (una foto eventualmente consistente es aceptable).
type AlertasUseCase struct {
	artRepo repository.ArticuloRepository
}

// NewAlertasUseCase construye el evaluador de alertas.
func NewAlertasUseCase(artRepo repository.ArticuloRepository) *AlertasUseCase {
	return &AlertasUseCase{artRepo: artRepo}
}

// StockBajo devuelve los artículos activos en o por debajo de su mínimo,
// clasificados (critico / bajo / alerta), ordenados por severidad y stock
// ascendente, con los conteos por nivel. Solo administradores.
func (uc *AlertasUseCase) StockBajo(ctx context.Context, ident entity.Identidad) (*dto.StockBajoResponse, error) {
	if !ident.Rol.EsAdmin() {
		return nil, domain.ErrForbidden
	}

	filas, err := uc.artRepo.ListarStockBajo(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.StockBajoResponse{
		Success:   true,
		Total:     len(filas),
		Articulos: make([]dto.ArticuloNivelResponse, 0, len(filas)),
	}
	for _, fila := range filas {
		switch fila.Nivel {
		case entity.NivelCritico:
			resp.Criticos++
		case entity.NivelBajo:
			resp.Bajos++
		case entity.NivelAlerta:
			resp.Alertas++
		}
		resp.Articulos = append(resp.Articulos, dto.ArticuloNivelResponse{
			ArticuloResponse: toArticuloResponse(&fila.Articulo),
			NivelAlerta:      fila.Nivel,
		})
	}
	return resp, nil
}

func toArticuloResponse(a *entity.Articulo) dto.ArticuloResponse {
	return dto.ArticuloResponse{
		ID:             a.ID,
		Codigo:         a.Codigo,
		Nombre:         a.Nombre,
		Descripcion:    a.Descripcion,
		Categoria:      a.Categoria,
		UnidadMedida:   a.UnidadMedida,
		StockActual:    a.StockActual,
		StockMinimo:    a.StockMinimo,
		PrecioUnitario: a.PrecioUnitario,
		Activo:         a.Activo,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
