package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/domain/entity"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// MovimientoHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type MovimientoHandler struct {
	uc *inventory.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *inventory.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimiento de inventario
// @Description  entrada suma, salida resta (nunca bajo cero), ajuste fija el saldo (solo admin).
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearMovimientoRequest  true  "articulo_id, tipo, cantidad, motivo"
// @Success      201   {object}  dto.CrearMovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	ident, ok := GetIdentidad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	var in dto.CrearMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.RegistrarMovimiento(c.Context(), ident, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Listar godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        articulo_id  query  int     false  "Filtrar por artículo"
// @Param        tipo         query  string  false  "entrada | salida | ajuste"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD o RFC3339"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD o RFC3339"
// @Success      200  {array}   dto.MovimientoDetalleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	var f repository.FiltroMovimientos
	if s := c.Query("articulo_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return badParam(c, "articulo_id")
		}
		f.ArticuloID = &id
	}
	f.Tipo = entity.TipoMovimiento(c.Query("tipo"))
	var ok bool
	if f.Desde, ok = parseFecha(c.Query("fecha_desde")); !ok {
		return badParam(c, "fecha_desde")
	}
	if f.Hasta, ok = parseFecha(c.Query("fecha_hasta")); !ok {
		return badParam(c, "fecha_hasta")
	}

	list, err := h.uc.ListarMovimientos(c.Context(), f)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(list), "movimientos": list})
}

// PorArticulo godoc
// @Summary      Movimientos de un artículo
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id     path   int  true   "ID del artículo"
// @Param        limit  query  int  false  "Tope de filas (0 = sin tope)"
// @Success      200  {array}   dto.MovimientoDetalleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos/articulo/{id} [get]
func (h *MovimientoHandler) PorArticulo(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	limit := c.QueryInt("limit", 0)

	list, err := h.uc.MovimientosPorArticulo(c.Context(), id, limit)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(list), "movimientos": list})
}

// Resumen godoc
// @Summary      Resumen de movimientos por tipo
// @Description  Totales y cantidad movida por tipo en el rango de fechas. Solo admin.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD o RFC3339"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD o RFC3339"
// @Success      200  {array}   dto.ResumenTipoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/movimientos/resumen [get]
func (h *MovimientoHandler) Resumen(c *fiber.Ctx) error {
	ident, ok := GetIdentidad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	var f repository.FiltroMovimientos
	if f.Desde, ok = parseFecha(c.Query("fecha_desde")); !ok {
		return badParam(c, "fecha_desde")
	}
	if f.Hasta, ok = parseFecha(c.Query("fecha_hasta")); !ok {
		return badParam(c, "fecha_hasta")
	}

	resumen, err := h.uc.ResumenMovimientos(c.Context(), ident, f)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "resumen": resumen})
}

// Eliminar godoc
// @Summary      Eliminar un movimiento del libro
// @Description  Solo admin; el movimiento más reciente de cada artículo está protegido.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.EliminarMovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [delete]
func (h *MovimientoHandler) Eliminar(c *fiber.Ctx) error {
	ident, ok := GetIdentidad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	resp, err := h.uc.EliminarMovimiento(c.Context(), ident, id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}
