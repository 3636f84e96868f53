package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mgagro/agro-api/internal/application/auth"
	"github.com/mgagro/agro-api/internal/application/inventory"
	"github.com/mgagro/agro-api/internal/application/usecase"
	"github.com/mgagro/agro-api/internal/infrastructure/postgres"
	httpRouter "github.com/mgagro/agro-api/internal/interfaces/http"
	"github.com/mgagro/agro-api/pkg/config"
	"github.com/mgagro/agro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.InitSchema {
		if err := postgres.InitSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("inicializar esquema")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	articuloRepo := postgres.NewArticuloRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	actividadRepo := postgres.NewActividadRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, empleadoRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	articuloUC := usecase.NewArticuloUseCase(articuloRepo)
	empleadoUC := usecase.NewEmpleadoUseCase(txRunner, empleadoRepo)
	actividadUC := usecase.NewActividadUseCase(actividadRepo, empleadoRepo)
	movimientoUC := inventory.NewMovimientoUseCase(txRunner, movimientoRepo)
	alertasUC := inventory.NewAlertasUseCase(articuloRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.HTTP()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MG Agro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ArticuloUC:   articuloUC,
		EmpleadoUC:   empleadoUC,
		ActividadUC:  actividadUC,
		MovimientoUC: movimientoUC,
		AlertasUC:    alertasUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
