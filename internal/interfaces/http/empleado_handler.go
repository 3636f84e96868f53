package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mgagro/agro-api/internal/application/dto"
	"github.com/mgagro/agro-api/internal/application/usecase"
)

// EmpleadoHandler maneja las peticiones HTTP de empleados (solo personal).
type EmpleadoHandler struct {
	uc *usecase.EmpleadoUseCase
}

// NewEmpleadoHandler construye el handler.
func NewEmpleadoHandler(uc *usecase.EmpleadoUseCase) *EmpleadoHandler {
	return &EmpleadoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear empleado con su cuenta de usuario
// @Description  Alta atómica: empleado y usuario se crean juntos o no se crea ninguno.
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEmpleadoRequest  true  "datos del empleado y credenciales"
// @Success      201   {object}  dto.CrearEmpleadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empleados [post]
func (h *EmpleadoHandler) Crear(c *fiber.Ctx) error {
	ident, ok := GetIdentidad(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	}
	var in dto.CrearEmpleadoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Crear(c.Context(), ident, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Listar godoc
// @Summary      Listar empleados
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        activo  query  bool  false  "Filtrar por activo"
// @Success      200  {array}  dto.EmpleadoResponse
// @Router       /api/empleados [get]
func (h *EmpleadoHandler) Listar(c *fiber.Ctx) error {
	var activo *bool
	if s := c.Query("activo"); s != "" {
		v := s == "true" || s == "1"
		activo = &v
	}
	list, err := h.uc.Listar(c.Context(), activo)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "total": len(list), "empleados": list})
}

// GetByID godoc
// @Summary      Obtener un empleado
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmpleadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [get]
func (h *EmpleadoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar un empleado
// @Tags         empleados
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID del empleado"
// @Param        body  body  dto.ActualizarEmpleadoRequest  true  "datos del empleado"
// @Success      200   {object}  dto.EmpleadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [put]
func (h *EmpleadoHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var in dto.ActualizarEmpleadoRequest
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
// @Summary      Desactivar un empleado (soft delete)
// @Tags         empleados
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del empleado"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleados/{id} [delete]
func (h *EmpleadoHandler) Desactivar(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	if err := h.uc.Desactivar(c.Context(), id); err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "Empleado desactivado correctamente"})
}
