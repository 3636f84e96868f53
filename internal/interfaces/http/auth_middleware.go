package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/pkg/jwt"
)

// LocalIdentidad key de c.Locals donde el middleware deja la identidad autenticada.
const LocalIdentidad = "identidad"

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
// Rechaza tokens con rol fuera de la enumeración conocida: un rol desconocido
// nunca pasa de aquí.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		rol := entity.ParseRol(claims.Rol)
		if rol == "" || claims.UserID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalIdentidad, entity.Identidad{
			UserID:     claims.UserID,
			Email:      claims.Email,
			Nombre:     claims.Nombre,
			Rol:        rol,
			EmpleadoID: claims.EmpleadoID,
		})
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol autenticado no está en la lista.
// Se apila después de AuthMiddleware.
func RequireRole(roles ...entity.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, ok := GetIdentidad(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
		}
		for _, r := range roles {
			if ident.Rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetIdentidad devuelve la identidad del contexto (después del middleware de auth).
func GetIdentidad(c *fiber.Ctx) (entity.Identidad, bool) {
	v := c.Locals(LocalIdentidad)
	if v == nil {
		return entity.Identidad{}, false
	}
	ident, ok := v.(entity.Identidad)
	return ident, ok
}
