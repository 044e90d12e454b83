package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prevenapp/inspecciones-api/internal/application/auth"
	"github.com/prevenapp/inspecciones-api/internal/application/inspection"
	"github.com/prevenapp/inspecciones-api/internal/application/usecase"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	WorkerUC     *usecase.WorkerUseCase
	TemplateUC   *usecase.TemplateUseCase
	InspectionUC *inspection.UseCase
	PDFUC        *inspection.PDFUseCase
	UserUC       *usecase.UserUseCase
	SettingsUC   *usecase.SettingsUseCase
	DashboardUC  *usecase.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies: lectura para todos, mutación solo administradores
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	adminOnly := RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin)
	companies.Post("/", adminOnly, companyHandler.Create)
	companies.Patch("/:id", adminOnly, companyHandler.Update)
	companies.Delete("/:id", adminOnly, companyHandler.Delete)

	// Workers: cualquier usuario autenticado
	workers := protected.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Get("/:id", workerHandler.GetByID)
	workers.Patch("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)

	// Templates: lectura para todos, mutación solo administradores
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Post("/", adminOnly, templateHandler.Create)
	templates.Put("/:id", adminOnly, templateHandler.Update)
	templates.Delete("/:id", adminOnly, templateHandler.Delete)

	// Inspections: cualquier usuario autenticado
	inspections := protected.Group("/inspections")
	inspectionHandler := NewInspectionHandler(deps.InspectionUC, deps.PDFUC)
	inspections.Post("/", inspectionHandler.Create)
	inspections.Get("/", inspectionHandler.List)
	inspections.Get("/:id", inspectionHandler.GetByID)
	inspections.Patch("/:id", inspectionHandler.Update)
	inspections.Post("/:id/photos", inspectionHandler.AddPhoto)
	inspections.Delete("/:id/photos/:photoId", inspectionHandler.RemovePhoto)
	inspections.Post("/:id/finalize", inspectionHandler.Finalize)
	inspections.Get("/:id/pdf", inspectionHandler.DownloadPDF)

	// Users: administración solo SUPERADMIN; la lista la leen administradores
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", adminOnly, userHandler.List)
	superOnly := RequireRole(entity.RoleSuperAdmin)
	users.Post("/", superOnly, userHandler.Create)
	users.Patch("/:id", superOnly, userHandler.Update)
	users.Delete("/:id", superOnly, userHandler.Delete)

	// Alias histórico del frontend para dar de alta usuarios
	protected.Post("/auth/register", superOnly, userHandler.Create)

	// Settings del usuario autenticado
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Patch("/settings", settingsHandler.Update)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
