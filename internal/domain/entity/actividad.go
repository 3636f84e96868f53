package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actividad es el registro diario de trabajo de un empleado.
// Única por (empleado, fecha, descripción); horas en (0, 24].
type Actividad struct {
	ID            int64
	EmpleadoID    int64
	Fecha         time.Time // solo fecha, sin hora
	Descripcion   string
	Horas         decimal.Decimal
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
