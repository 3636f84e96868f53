package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mgagro/agro-api/internal/application/auth"
	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/application/usecase"
	"github.com/mgagro/agro-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ArticuloUC   *usecase.ArticuloUseCase
	EmpleadoUC   *usecase.EmpleadoUseCase
	ActividadUC  *usecase.ActividadUseCase
	MovimientoUC *inventory.MovimientoUseCase
	AlertasUC    *inventory.AlertasUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login y register públicos; perfil requiere token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/perfil", AuthMiddleware(deps.JWTSecret), authHandler.Perfil)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Personal: admin, gerente y empleado; usuario queda fuera de escritura.
	personal := RequireRole(entity.RolAdmin, entity.RolGerente, entity.RolEmpleado)
	soloAdmin := RequireRole(entity.RolAdmin)
	gestion := RequireRole(entity.RolAdmin, entity.RolGerente)

	// Articulos (protegido; stock-bajo y baja solo admin)
	articulos := protected.Group("/articulos")
	articuloHandler := NewArticuloHandler(deps.ArticuloUC, deps.AlertasUC)
	articulos.Get("/", articuloHandler.Listar)
	articulos.Get("/buscar", articuloHandler.Buscar)
	articulos.Get("/stock-bajo", soloAdmin, articuloHandler.StockBajo)
	articulos.Post("/", personal, articuloHandler.Crear)
	articulos.Get("/:id", articuloHandler.GetByID)
	articulos.Put("/:id", personal, articuloHandler.Actualizar)
	articulos.Delete("/:id", soloAdmin, articuloHandler.Desactivar)

	// Movimientos (personal; resumen y eliminación solo admin)
	movimientos := protected.Group("/movimientos", personal)
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Post("/", movimientoHandler.Registrar)
	movimientos.Get("/", movimientoHandler.Listar)
	movimientos.Get("/resumen", soloAdmin, movimientoHandler.Resumen)
	movimientos.Get("/articulo/:id", movimientoHandler.PorArticulo)
	movimientos.Delete("/:id", soloAdmin, movimientoHandler.Eliminar)

	// Empleados (gestión: admin y gerente)
	empleados := protected.Group("/empleados", gestion)
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Post("/", empleadoHandler.Crear)
	empleados.Get("/", empleadoHandler.Listar)
	empleados.Get("/:id", empleadoHandler.GetByID)
	empleados.Put("/:id", empleadoHandler.Actualizar)
	empleados.Delete("/:id", empleadoHandler.Desactivar)

	// Actividades (personal; el caso de uso aplica la regla "solo propio dato")
	actividades := protected.Group("/actividades", personal)
	actividadHandler := NewActividadHandler(deps.ActividadUC)
	actividades.Post("/", actividadHandler.Crear)
	actividades.Get("/", actividadHandler.Listar)
	actividades.Get("/empleado/:id", actividadHandler.PorEmpleado)
	actividades.Put("/:id", actividadHandler.Actualizar)
	actividades.Delete("/:id", actividadHandler.Eliminar)
}
