package entity

// Rol es la enumeración cerrada de roles de usuario. Se modela como tipo propio
// para que las comparaciones de permisos pasen por métodos y no por strings
// sueltos en los handlers.
type Rol string

const (
	RolAdmin    Rol = "admin"
	RolGerente  Rol = "gerente"
	RolEmpleado Rol = "empleado"
	RolUsuario  Rol = "usuario"
)

// ParseRol valida un rol recibido como string. Devuelve "" si no es válido.
func ParseRol(s string) Rol {
	switch Rol(s) {
	case RolAdmin, RolGerente, RolEmpleado, RolUsuario:
		return Rol(s)
	}
	return ""
}

// EsValido indica si el rol pertenece a la enumeración.
func (r Rol) EsValido() bool {
	return ParseRol(string(r)) != ""
}

// EsAdmin indica si el rol tiene privilegios de administrador.
func (r Rol) EsAdmin() bool {
	return r == RolAdmin
}

// EsPersonal indica si el rol puede operar el inventario (admin, gerente o empleado).
// El rol usuario es de solo consulta en el dashboard y no opera movimientos.
func (r Rol) EsPersonal() bool {
	switch r {
	case RolAdmin, RolGerente, RolEmpleado:
		return true
	case RolUsuario:
		return false
	}
	return false
}

func (r Rol) String() string { return string(r) }

// Identidad es la identidad autenticada que el middleware extrae del token y
// que los casos de uso reciben en cada petición.
type Identidad struct {
	UserID     int64
	Email      string
	Nombre     string
	Rol        Rol
	EmpleadoID *int64
}
