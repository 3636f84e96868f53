package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse usuario sin password.
type UsuarioResponse struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Nombre         string    `json:"nombre"`
	Rol            string    `json:"rol"`
	EmpleadoID     *int64    `json:"empleado_id"`
	EmpleadoNombre *string   `json:"empleado_nombre"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"createdat"`
}

// LoginResponse respuesta de login con token JWT.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    UsuarioResponse `json:"user"`
	Token   string          `json:"token"`
}

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol,omitempty"` // por defecto empleado
}
