package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseID lee un parámetro de ruta numérico (> 0).
func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseFecha acepta "2006-01-02" o RFC3339. Devuelve nil para cadena vacía.
func parseFecha(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	return nil, false
}
