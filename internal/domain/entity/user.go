package entity

import "time"

// User representa una cuenta del sistema. El registro de empleado asociado
// (si existe) vive en Empleado y se enlaza por Empleado.UserID.
type User struct {
	ID        int64
	Email     string
	Password  string // hash bcrypt, nunca en claro después de persistir
	Nombre    string
	Rol       Rol
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
