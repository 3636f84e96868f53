package inventory

import (
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// MovimientoUseCase es el motor del libro de movimientos: registra entradas,
// salidas y ajustes de forma transaccional con bloqueo de fila sobre el
// artículo, protege el último movimiento contra eliminación y expone los
// listados y el resumen.
type MovimientoUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovimientoRepository // atado al pool; solo rutas de lectura
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(txRunner TxRunner, movRepo repository.MovimientoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{txRunner: txRunner, movRepo: movRepo}
}

func toMovimientoResponse(m *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:            m.ID,
		ArticuloID:    m.ArticuloID,
		UserID:        m.UserID,
		Tipo:          m.Tipo.String(),
		Cantidad:      m.Cantidad,
		StockAnterior: m.StockAnterior,
		StockNuevo:    m.StockNuevo,
		Motivo:        m.Motivo,
		Fecha:         m.Fecha,
	}
}

func toMovimientoDetalleResponse(d repository.MovimientoDetalle) dto.MovimientoDetalleResponse {
	return dto.MovimientoDetalleResponse{
		MovimientoResponse: toMovimientoResponse(&d.Movimiento),
		Codigo:             d.Codigo,
		ArticuloNombre:     d.ArticuloNombre,
		UsuarioNombre:      d.UsuarioNombre,
	}
}
