package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Empleado representa un registro de personal, enlazado a su cuenta de usuario.
type Empleado struct {
	ID           int64
	UserID       *int64 // SET NULL al eliminar el usuario
	Nombre       string
	Apellido     string
	Documento    string // único
	Telefono     string
	Email        string
	Direccion    string
	FechaIngreso time.Time
	Puesto       string
	Salario      *decimal.Decimal
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NombreCompleto devuelve "Nombre Apellido".
func (e *Empleado) NombreCompleto() string {
	return e.Nombre + " " + e.Apellido
}
