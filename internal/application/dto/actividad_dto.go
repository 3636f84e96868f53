package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearActividadRequest body para POST /api/actividades.
type CrearActividadRequest struct {
	EmpleadoID    int64           `json:"empleado_id"`
	Fecha         time.Time       `json:"fecha"`
	Descripcion   string          `json:"descripcion"`
	Horas         decimal.Decimal `json:"horas"`
	Observaciones string          `json:"observaciones,omitempty"`
}

// ActualizarActividadRequest body para PUT /api/actividades/:id.
type ActualizarActividadRequest struct {
	Fecha         time.Time       `json:"fecha"`
	Descripcion   string          `json:"descripcion"`
	Horas         decimal.Decimal `json:"horas"`
	Observaciones string          `json:"observaciones,omitempty"`
}

// ActividadResponse un registro diario de actividad.
type ActividadResponse struct {
	ID            int64           `json:"id"`
	EmpleadoID    int64           `json:"empleado_id"`
	Fecha         time.Time       `json:"fecha"`
	Descripcion   string          `json:"descripcion"`
	Horas         decimal.Decimal `json:"horas"`
	Observaciones string          `json:"observaciones,omitempty"`
	CreatedAt     time.Time       `json:"createdat"`
	UpdatedAt     time.Time       `json:"updatedat"`
}

// ActividadDetalleResponse fila del listado con el nombre del empleado.
type ActividadDetalleResponse struct {
	ActividadResponse
	EmpleadoNombre   string `json:"nombre"`
	EmpleadoApellido string `json:"apellido"`
}

// ListaActividadesResponse respuesta de GET /api/actividades.
type ListaActividadesResponse struct {
	Success     bool                       `json:"success"`
	Actividades []ActividadDetalleResponse `json:"actividades"`
}
