package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearEmpleadoRequest body para POST /api/empleados. Crea el empleado y su
// cuenta de usuario (rol empleado) en una sola transacción.
type CrearEmpleadoRequest struct {
	Nombre       string           `json:"nombre"`
	Apellido     string           `json:"apellido"`
	Documento    string           `json:"documento,omitempty"`
	Telefono     string           `json:"telefono,omitempty"`
	Email        string           `json:"email"`
	Direccion    string           `json:"direccion,omitempty"`
	FechaIngreso time.Time        `json:"fecha_ingreso"`
	Puesto       string           `json:"puesto,omitempty"`
	Salario      *decimal.Decimal `json:"salario,omitempty"`
	Password     string           `json:"password"`
}

// ActualizarEmpleadoRequest body para PUT /api/empleados/:id.
type ActualizarEmpleadoRequest struct {
	Nombre       string           `json:"nombre"`
	Apellido     string           `json:"apellido"`
	Documento    string           `json:"documento,omitempty"`
	Telefono     string           `json:"telefono,omitempty"`
	Email        string           `json:"email,omitempty"`
	Direccion    string           `json:"direccion,omitempty"`
	FechaIngreso time.Time        `json:"fecha_ingreso"`
	Puesto       string           `json:"puesto,omitempty"`
	Salario      *decimal.Decimal `json:"salario,omitempty"`
	Activo       bool             `json:"activo"`
}

// EmpleadoResponse un empleado.
type EmpleadoResponse struct {
	ID           int64            `json:"id"`
	UserID       *int64           `json:"user_id"`
	Nombre       string           `json:"nombre"`
	Apellido     string           `json:"apellido"`
	Documento    string           `json:"documento,omitempty"`
	Telefono     string           `json:"telefono,omitempty"`
	Email        string           `json:"email,omitempty"`
	Direccion    string           `json:"direccion,omitempty"`
	FechaIngreso time.Time        `json:"fecha_ingreso"`
	Puesto       string           `json:"puesto,omitempty"`
	Salario      *decimal.Decimal `json:"salario,omitempty"`
	Activo       bool             `json:"activo"`
	CreatedAt    time.Time        `json:"createdat"`
	UpdatedAt    time.Time        `json:"updatedat"`
}

// CrearEmpleadoResponse respuesta 201: empleado y usuario creados.
type CrearEmpleadoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Empleado EmpleadoResponse `json:"empleado"`
		Usuario  UsuarioResponse  `json:"usuario"`
	} `json:"data"`
}
