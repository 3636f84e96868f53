package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearArticuloRequest body para POST /api/articulos.
type CrearArticuloRequest struct {
	Codigo         string           `json:"codigo"`
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion,omitempty"`
	Categoria      string           `json:"categoria,omitempty"`
	UnidadMedida   string           `json:"unidad_medida,omitempty"`
	StockActual    decimal.Decimal  `json:"stock_actual"`
	StockMinimo    decimal.Decimal  `json:"stock_minimo"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// ActualizarArticuloRequest body para PUT /api/articulos/:id.
// No incluye stock_actual: el saldo solo lo mueve el motor de movimientos.
type ActualizarArticuloRequest struct {
	Codigo         string           `json:"codigo"`
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion,omitempty"`
	Categoria      string           `json:"categoria,omitempty"`
	UnidadMedida   string           `json:"unidad_medida,omitempty"`
	StockMinimo    decimal.Decimal  `json:"stock_minimo"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Activo         bool             `json:"activo"`
}

// ArticuloResponse un artículo del inventario.
type ArticuloResponse struct {
	ID             int64            `json:"id"`
	Codigo         string           `json:"codigo"`
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion,omitempty"`
	Categoria      string           `json:"categoria,omitempty"`
	UnidadMedida   string           `json:"unidad_medida"`
	StockActual    decimal.Decimal  `json:"stock_actual"`
	StockMinimo    decimal.Decimal  `json:"stock_minimo"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Activo         bool             `json:"activo"`
	CreatedAt      time.Time        `json:"createdat"`
	UpdatedAt      time.Time        `json:"updatedat"`
}

// ListaArticulosResponse respuesta de GET /api/articulos.
type ListaArticulosResponse struct {
	Success   bool               `json:"success"`
	Articulos []ArticuloResponse `json:"articulos"`
}

// ArticuloNivelResponse artículo más su nivel de alerta calculado.
type ArticuloNivelResponse struct {
	ArticuloResponse
	NivelAlerta string `json:"nivel_alerta"`
}

// StockBajoResponse respuesta de GET /api/articulos/stock-bajo (solo admin).
type StockBajoResponse struct {
	Success   bool                    `json:"success"`
	Total     int                     `json:"total"`
	Criticos  int                     `json:"criticos"`
	Bajos     int                     `json:"bajos"`
	Alertas   int                     `json:"alertas"`
	Articulos []ArticuloNivelResponse `json:"articulos"`
}
