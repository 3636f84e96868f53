package usecase

import (
	"context"

	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
	"github.com/mgagro/agro-api/pkg/normalizar"
)

// ArticuloUseCase CRUD de artículos. El stock vivo no se toca por aquí: una vez
// que el artículo tiene movimientos, solo el motor de inventario escribe
// stock_actual. Los artículos nunca se borran físicamente (soft delete vía
// activo) para que el libro de movimientos siga siendo válido.
type ArticuloUseCase struct {
	artRepo repository.ArticuloRepository
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(artRepo repository.ArticuloRepository) *ArticuloUseCase {
	return &ArticuloUseCase{artRepo: artRepo}
}

// Crear da de alta un artículo. El código se normaliza (sin tildes, mayúsculas,
// guiones) y debe ser único; el stock inicial no puede ser negativo.
func (uc *ArticuloUseCase) Crear(ctx context.Context, in dto.CrearArticuloRequest) (*dto.ArticuloResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockActual.IsNegative() || in.StockMinimo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unidad := in.UnidadMedida
	if unidad == "" {
		unidad = "unidad"
	}
	art, err := uc.artRepo.Crear(ctx, &entity.Articulo{
		Codigo:         normalizar.Codigo(in.Codigo),
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Categoria:      in.Categoria,
		UnidadMedida:   unidad,
		StockActual:    in.StockActual,
		StockMinimo:    in.StockMinimo,
		PrecioUnitario: in.PrecioUnitario,
		Activo:         true,
	})
	if err != nil {
		return nil, err
	}
	resp := toArticuloResponse(art)
	return &resp, nil
}

// Listar devuelve artículos con filtros opcionales de activo y categoría.
func (uc *ArticuloUseCase) Listar(ctx context.Context, f repository.FiltroArticulos) (*dto.ListaArticulosResponse, error) {
	arts, err := uc.artRepo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := &dto.ListaArticulosResponse{Success: true, Articulos: make([]dto.ArticuloResponse, 0, len(arts))}
	for _, a := range arts {
		resp.Articulos = append(resp.Articulos, toArticuloResponse(a))
	}
	return resp, nil
}

// GetByID obtiene un artículo por id.
func (uc *ArticuloUseCase) GetByID(ctx context.Context, id int64) (*dto.ArticuloResponse, error) {
	art, err := uc.artRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, domain.ErrNotFound
	}
	resp := toArticuloResponse(art)
	return &resp, nil
}

// Buscar busca por código, nombre o descripción (solo activos).
func (uc *ArticuloUseCase) Buscar(ctx context.Context, termino string) ([]dto.ArticuloResponse, error) {
	arts, err := uc.artRepo.Buscar(ctx, termino)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticuloResponse, 0, len(arts))
	for _, a := range arts {
		out = append(out, toArticuloResponse(a))
	}
	return out, nil
}

// Actualizar modifica los datos maestros del artículo (nunca stock_actual).
func (uc *ArticuloUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarArticuloRequest) (*dto.ArticuloResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	unidad := in.UnidadMedida
	if unidad == "" {
		unidad = "unidad"
	}
	art, err := uc.artRepo.Actualizar(ctx, &entity.Articulo{
		ID:             id,
		Codigo:         normalizar.Codigo(in.Codigo),
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Categoria:      in.Categoria,
		UnidadMedida:   unidad,
		StockMinimo:    in.StockMinimo,
		PrecioUnitario: in.PrecioUnitario,
		Activo:         in.Activo,
	})
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, domain.ErrNotFound
	}
	resp := toArticuloResponse(art)
	return &resp, nil
}

// Desactivar marca el artículo como inactivo (soft delete).
func (uc *ArticuloUseCase) Desactivar(ctx context.Context, id int64) error {
	return uc.artRepo.Desactivar(ctx, id)
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
