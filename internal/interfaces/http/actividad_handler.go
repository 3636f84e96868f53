package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/application/usecase"
	"github.com/mgagro/agro-api/internal/domain/repository"
)

// ActividadHandler maneja las peticiones HTTP del registro de actividades (protegido).
type ActividadHandler struct {
	uc *usecase.ActividadUseCase
}

// NewActividadHandler construye el handler.
func NewActividadHandler(uc *usecase.ActividadUseCase) *ActividadHandler {
	return &ActividadHandler{uc: uc}
}

// Crear godoc
// @Summary      Registrar actividad diaria
// @Tags         actividades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearActividadRequest  true  "empleado_id, fecha, descripcion, horas"
// @Success      201   {object}  dto.ActividadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/actividades [post]
func (h *ActividadHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearActividadRequest
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
// @Summary      Listar actividades
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        empleado_id  query  int     false  "Filtrar por empleado"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ListaActividadesResponse
// @Router       /api/actividades [get]
func (h *ActividadHandler) Listar(c *fiber.Ctx) error {
	var f repository.FiltroActividades
	if s := c.Query("empleado_id"); s != "" {
		id := int64(c.QueryInt("empleado_id"))
		if id <= 0 {
			return badParam(c, "empleado_id")
		}
		f.EmpleadoID = &id
	}
	var ok bool
	if f.Desde, ok = parseFecha(c.Query("fecha_desde")); !ok {
		return badParam(c, "fecha_desde")
	}
	if f.Hasta, ok = parseFecha(c.Query("fecha_hasta")); !ok {
		return badParam(c, "fecha_hasta")
	}

	resp, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// PorEmpleado godoc
// @Summary      Actividades de un empleado
// @Description  Un empleado solo consulta las suyas; admin y gerente las de cualquiera.
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        id           path   int     true   "ID del empleado"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.ActividadResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/actividades/empleado/{id} [get]
func (h *ActividadHandler) PorEmpleado(c *fiber.Ctx) error {
	ident, ok := GetIdentidad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	desde, ok := parseFecha(c.Query("fecha_desde"))
	if !ok {
		return badParam(c, "fecha_desde")
	}
	hasta, ok := parseFecha(c.Query("fecha_hasta"))
	if !ok {
		return badParam(c, "fecha_hasta")
	}

	list, err := h.uc.PorEmpleado(c.Context(), ident, id, desde, hasta)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(list), "actividades": list})
}

// Actualizar godoc
// @Summary      Actualizar una actividad
// @Tags         actividades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                             true  "ID de la actividad"
// @Param        body  body  dto.ActualizarActividadRequest  true  "fecha, descripcion, horas"
// @Success      200   {object}  dto.ActividadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/actividades/{id} [put]
func (h *ActividadHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.ActualizarActividadRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// Eliminar godoc
// @Summary      Eliminar una actividad
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la actividad"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id} [delete]
func (h *ActividadHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Actividad eliminada correctamente"})
}
