package inventory

import (
	"context"

	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// EliminarMovimiento borra una entrada del libro. Solo administradores, y nunca
// el movimiento más reciente del artículo: ese es el que respalda el
// stock_actual vivo (el saldo se mantiene incrementalmente y no se rederiva al
// borrar), así que eliminarlo desincronizaría el artículo de su libro. Las
// entradas anteriores, ya superadas, sí pueden depurarse.
func (uc *MovimientoUseCase) EliminarMovimiento(ctx context.Context, ident entity.Identidad, id int64) (*dto.EliminarMovimientoResponse, error) {
	if !ident.Rol.EsAdmin() {
		return nil, domain.ErrForbidden
	}

	var eliminado *entity.Movimiento
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		_ repository.ArticuloRepository,
		_ repository.UserRepository,
	) error {
		mov, err := movRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}

		ultimo, err := movRepo.UltimoDeArticulo(ctx, mov.ArticuloID)
		if err != nil {
			return err
		}
		if ultimo != nil && ultimo.ID == mov.ID {
			return domain.ErrUltimoMovimiento
		}

		if err := movRepo.Eliminar(ctx, mov.ID); err != nil {
			return err
		}
		eliminado = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.EliminarMovimientoResponse{
		Success:             true,
		Message:             "Movimiento eliminado correctamente",
		MovimientoEliminado: toMovimientoResponse(eliminado),
	}, nil
}
