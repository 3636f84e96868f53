package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoMovimiento es la enumeración cerrada de tipos de movimiento de inventario.
type TipoMovimiento string

const (
	MovimientoEntrada TipoMovimiento = "entrada"
	MovimientoSalida  TipoMovimiento = "salida"
	MovimientoAjuste  TipoMovimiento = "ajuste" // corrección administrativa: cantidad = saldo destino, no delta
)

// ParseTipoMovimiento valida un tipo recibido como string. Devuelve "" si no es válido.
func ParseTipoMovimiento(s string) TipoMovimiento {
	switch TipoMovimiento(s) {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjuste:
		return TipoMovimiento(s)
	}
	return ""
}

func (t TipoMovimiento) String() string { return string(t) }

// Movimiento es una entrada del libro de movimientos: un evento atómico que
// afecta el stock de un artículo, con el saldo antes y después. El libro es
// append-only salvo la eliminación administrativa de entradas no vigentes.
type Movimiento struct {
	ID            int64
	ArticuloID    int64
	UserID        *int64 // SET NULL al eliminar la cuenta; el libro sobrevive a sus autores
	Tipo          TipoMovimiento
	Cantidad      decimal.Decimal // > 0; para ajuste es el saldo absoluto resultante
	StockAnterior decimal.Decimal
	StockNuevo    decimal.Decimal
	Motivo        string
	Fecha         time.Time
}
