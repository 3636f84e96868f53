package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// RegistrarMovimiento registra un movimiento de inventario de forma transaccional.
//
// Dentro de la transacción se verifica que el usuario exista y esté activo, se
// carga el artículo con SELECT ... FOR UPDATE (dos movimientos concurrentes
// sobre el mismo artículo se serializan: sin el bloqueo, dos salidas podrían
// leer el mismo saldo y ambas confirmar), se calcula el saldo nuevo según el
// tipo y se persisten el artículo actualizado y la entrada del libro. Cualquier
// fallo revierte todo: nunca queda stock actualizado sin entrada en el libro ni
// al revés.
//
// El ajuste es exclusivo de administradores y su cantidad se interpreta como el
// saldo absoluto destino. La alerta de stock bajo solo se adjunta si quien
// registra es admin.
func (uc *MovimientoUseCase) RegistrarMovimiento(ctx context.Context, ident entity.Identidad, in dto.CrearMovimientoRequest) (*dto.CrearMovimientoResponse, error) {
	if ident.UserID == 0 {
		return nil, domain.ErrUnauthorized
	}

	tipo := entity.ParseTipoMovimiento(in.Tipo)
	if tipo == "" {
		return nil, domain.ErrTipoMovimiento
	}

	switch tipo {
	case entity.MovimientoEntrada, entity.MovimientoSalida:
		if !in.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovimientoAjuste:
		// La última línea de defensa: aunque la UI solo ofrezca "ajuste" a
		// admin/gerente, el servicio exige admin.
		if !ident.Rol.EsAdmin() {
			return nil, domain.ErrForbidden
		}
		if in.Cantidad.IsNegative() {
			return nil, domain.ErrAjusteInvalido
		}
	}

	var (
		mov      *entity.Movimiento
		articulo *entity.Articulo
	)

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		artRepo repository.ArticuloRepository,
		userRepo repository.UserRepository,
	) error {
		user, err := userRepo.GetActivoByID(ctx, ident.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		// Bloquea la fila del artículo hasta el commit/rollback.
		articulo, err = artRepo.GetActivoForUpdate(ctx, in.ArticuloID)
		if err != nil {
			return err
		}
		if articulo == nil {
			return domain.ErrNotFound
		}

		stockAnterior := articulo.StockActual
		var stockNuevo decimal.Decimal
		switch tipo {
		case entity.MovimientoEntrada:
			stockNuevo = stockAnterior.Add(in.Cantidad)
		case entity.MovimientoSalida:
			stockNuevo = stockAnterior.Sub(in.Cantidad)
			// Puede llegar a 0, nunca por debajo.
			if stockNuevo.IsNegative() {
				return domain.ErrInsufficientStock
			}
		case entity.MovimientoAjuste:
			stockNuevo = in.Cantidad
		}

		if err := artRepo.ActualizarStock(ctx, articulo.ID, stockNuevo); err != nil {
			return err
		}

		mov, err = movRepo.Crear(ctx, &entity.Movimiento{
			ArticuloID:    articulo.ID,
			UserID:        &ident.UserID,
			Tipo:          tipo,
			Cantidad:      in.Cantidad,
			StockAnterior: stockAnterior,
			StockNuevo:    stockNuevo,
			Motivo:        in.Motivo,
		})
		if err != nil {
			return err
		}

		articulo.StockActual = stockNuevo
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CrearMovimientoResponse{
		Success: true,
		Data:    toMovimientoResponse(mov),
		Alerta:  evaluarAlerta(ident.Rol, articulo),
	}, nil
}

// evaluarAlerta arma la alerta post-commit. Solo los administradores reciben
// datos de alerta; para el resto siempre es nil, sin importar el stock.
func evaluarAlerta(rol entity.Rol, a *entity.Articulo) *dto.AlertaStock {
	if !rol.EsAdmin() || a.StockActual.GreaterThan(a.StockMinimo) {
		return nil
	}
	alerta := &dto.AlertaStock{
		StockActual: a.StockActual,
		StockMinimo: a.StockMinimo,
		Articulo:    dto.ArticuloRef{ID: a.ID, Codigo: a.Codigo, Nombre: a.Nombre},
	}
	if a.StockActual.IsZero() {
		alerta.Tipo = entity.NivelCritico
		alerta.Mensaje = fmt.Sprintf("⚠️ STOCK AGOTADO: %s (%s)", a.Nombre, a.Codigo)
	} else {
		alerta.Tipo = entity.NivelBajo
		alerta.Mensaje = fmt.Sprintf("⚠️ STOCK BAJO: %s tiene %s unidades (mínimo: %s)",
			a.Nombre, a.StockActual.String(), a.StockMinimo.String())
	}
	return alerta
}
