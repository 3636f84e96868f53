package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/application/usecase"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// ArticuloHandler maneja las peticiones HTTP de artículos (protegido).
type ArticuloHandler struct {
	uc      *usecase.ArticuloUseCase
	alertas *inventory.AlertasUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *usecase.ArticuloUseCase, alertas *inventory.AlertasUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc, alertas: alertas}
}

// Crear godoc
// @Summary      Crear artículo
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearArticuloRequest  true  "codigo, nombre, stocks, precio"
// @Success      201   {object}  dto.ArticuloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/articulos [post]
func (h *ArticuloHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": resp})
}

// Listar godoc
// @Summary      Listar artículos
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        activo     query  bool    false  "Filtrar por activo"
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.ListaArticulosResponse
// @Router       /api/articulos [get]
func (h *ArticuloHandler) Listar(c *fiber.Ctx) error {
	var f repository.FiltroArticulos
	if s := c.Query("activo"); s != "" {
		activo := s == "true" || s == "1"
		f.Activo = &activo
	}
	f.Categoria = c.Query("categoria")

	resp, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// Buscar godoc
// @Summary      Buscar artículos por código, nombre o descripción
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Término de búsqueda"
// @Success      200  {array}  dto.ArticuloResponse
// @Router       /api/articulos/buscar [get]
func (h *ArticuloHandler) Buscar(c *fiber.Ctx) error {
	termino := c.Query("q")
	if termino == "" {
		return badParam(c, "q")
	}
	list, err := h.uc.Buscar(c.Context(), termino)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(list), "articulos": list})
}

// StockBajo godoc
// @Summary      Reporte de stock bajo
// @Description  Artículos activos en o bajo su mínimo, clasificados por severidad. Solo admin.
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockBajoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/articulos/stock-bajo [get]
func (h *ArticuloHandler) StockBajo(c *fiber.Ctx) error {
	ident, ok := GetIdentidad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	resp, err := h.alertas.StockBajo(c.Context(), ident)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener un artículo
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ArticuloResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [get]
func (h *ArticuloHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	resp, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// Actualizar godoc
// @Summary      Actualizar datos maestros de un artículo
// @Description  No modifica stock_actual; el saldo solo lo mueve el motor de movimientos.
// @Tags         articulos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID del artículo"
// @Param        body  body  dto.ActualizarArticuloRequest  true  "datos maestros"
// @Success      200   {object}  dto.ArticuloResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [put]
func (h *ArticuloHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.ActualizarArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// Desactivar godoc
// @Summary      Desactivar un artículo (soft delete)
// @Tags         articulos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del artículo"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articulos/{id} [delete]
func (h *ArticuloHandler) Desactivar(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	if err := h.uc.Desactivar(c.Context(), id); err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Artículo desactivado correctamente"})
}
