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

	"github.com/prevenapp/inspecciones-api/db/migrations"
	"github.com/prevenapp/inspecciones-api/internal/application/auth"
	"github.com/prevenapp/inspecciones-api/internal/application/inspection"
	"github.com/prevenapp/inspecciones-api/internal/application/usecase"
	infrapdf "github.com/prevenapp/inspecciones-api/internal/infrastructure/pdf"
	"github.com/prevenapp/inspecciones-api/internal/infrastructure/postgres"
	httpRouter "github.com/prevenapp/inspecciones-api/internal/interfaces/http"
	"github.com/prevenapp/inspecciones-api/pkg/config"
	"github.com/prevenapp/inspecciones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := migrations.Run(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	inspectionRepo := postgres.NewInspectionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	workerUC := usecase.NewWorkerUseCase(workerRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	inspectionUC := inspection.NewUseCase(inspectionRepo, templateRepo, companyRepo, workerRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := inspection.NewPDFUseCase(inspectionRepo, pdfGenerator)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(userRepo, companyRepo)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // fotos y firmas viajan inline como data URLs
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PrevenApp API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		WorkerUC:     workerUC,
		TemplateUC:   templateUC,
		InspectionUC: inspectionUC,
		PDFUC:        pdfUC,
		UserUC:       userUC,
		SettingsUC:   settingsUC,
		DashboardUC:  dashboardUC,
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
