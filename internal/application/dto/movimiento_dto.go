package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearMovimientoRequest body para POST /api/movimientos.
// Para tipo ajuste, cantidad es el saldo absoluto destino, no un delta.
type CrearMovimientoRequest struct {
	ArticuloID int64           `json:"articulo_id"`
	Tipo       string          `json:"tipo"` // entrada | salida | ajuste
	Cantidad   decimal.Decimal `json:"cantidad"`
	Motivo     string          `json:"motivo,omitempty"`
}

// MovimientoResponse una entrada del libro de movimientos. UserID es null si la
// cuenta que lo registró fue eliminada.
type MovimientoResponse struct {
	ID            int64           `json:"id"`
	ArticuloID    int64           `json:"articulo_id"`
	UserID        *int64          `json:"user_id"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	StockAnterior decimal.Decimal `json:"stock_anterior"`
	StockNuevo    decimal.Decimal `json:"stock_nuevo"`
	Motivo        string          `json:"motivo,omitempty"`
	Fecha         time.Time       `json:"fecha"`
}

// ArticuloRef referencia mínima a un artículo dentro de una alerta.
type ArticuloRef struct {
	ID     int64  `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
}

// AlertaStock aviso de stock bajo/agotado. Solo se adjunta a respuestas de administradores.
type AlertaStock struct {
	Tipo        string          `json:"tipo"` // critico | bajo
	Mensaje     string          `json:"mensaje"`
	StockActual decimal.Decimal `json:"stock_actual"`
	StockMinimo decimal.Decimal `json:"stock_minimo"`
	Articulo    ArticuloRef     `json:"articulo"`
}

// CrearMovimientoResponse respuesta 201 de POST /api/movimientos.
// Alerta es null si el stock está OK o si el solicitante no es admin.
type CrearMovimientoResponse struct {
	Success bool               `json:"success"`
	Data    MovimientoResponse `json:"data"`
	Alerta  *AlertaStock       `json:"alerta"`
}

// MovimientoDetalleResponse fila del listado, enriquecida con artículo y usuario.
type MovimientoDetalleResponse struct {
	MovimientoResponse
	Codigo         string `json:"codigo"`
	ArticuloNombre string `json:"articulo_nombre"`
	UsuarioNombre  string `json:"usuario_nombre,omitempty"`
}

// ResumenTipoResponse agregación por tipo de movimiento.
type ResumenTipoResponse struct {
	Tipo             string          `json:"tipo"`
	TotalMovimientos int64           `json:"total_movimientos"`
	CantidadTotal    decimal.Decimal `json:"cantidad_total"`
}

// EliminarMovimientoResponse respuesta de DELETE /api/movimientos/:id.
type EliminarMovimientoResponse struct {
	Success             bool               `json:"success"`
	Message             string             `json:"message"`
	MovimientoEliminado MovimientoResponse `json:"movimiento_eliminado"`
}
