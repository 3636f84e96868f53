package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de alerta de stock (derivados, nunca persistidos).
const (
	NivelCritico = "critico" // stock agotado
	NivelBajo    = "bajo"    // <= 50% del mínimo
	NivelAlerta  = "alerta"  // <= mínimo
	NivelNormal  = "normal"
)

// Articulo representa un ítem del inventario. StockActual es el saldo vivo que
// mantiene incrementalmente el motor de movimientos; ningún otro código lo escribe.
type Articulo struct {
	ID             int64
	Codigo         string // único
	Nombre         string
	Descripcion    string
	Categoria      string
	UnidadMedida   string
	StockActual    decimal.Decimal
	StockMinimo    decimal.Decimal
	PrecioUnitario *decimal.Decimal
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NivelAlerta clasifica el stock del artículo respecto a su mínimo:
// critico si está en cero, bajo si no supera la mitad del mínimo,
// alerta si no supera el mínimo y normal en otro caso.
func (a *Articulo) NivelAlerta() string {
	return ClasificarNivel(a.StockActual, a.StockMinimo)
}

// ClasificarNivel aplica la regla de clasificación sobre un saldo y un mínimo.
func ClasificarNivel(stockActual, stockMinimo decimal.Decimal) string {
	mitad := stockMinimo.Div(decimal.NewFromInt(2))
	switch {
	case stockActual.IsZero():
		return NivelCritico
	case stockActual.LessThanOrEqual(mitad):
		return NivelBajo
	case stockActual.LessThanOrEqual(stockMinimo):
		return NivelAlerta
	default:
		return NivelNormal
	}
}
