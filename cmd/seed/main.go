// seed crea el primer usuario SUPERADMIN y datos de demostración (una empresa
// y una plantilla de ejemplo) en una base recién migrada.
//
// Uso: go run ./cmd/seed
// Lee la configuración de las mismas variables de entorno que el API.
// Email y contraseña del admin se toman de SEED_ADMIN_EMAIL y
// SEED_ADMIN_PASSWORD (por defecto admin@prevenapp.cl / cambiar después).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prevenapp/inspecciones-api/db/migrations"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/infrastructure/postgres"
	"github.com/prevenapp/inspecciones-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	if err := migrations.Run(ctx, cfg.DB.ConnectionString()); err != nil {
		fail("migraciones: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	email := envOr("SEED_ADMIN_EMAIL", "admin@prevenapp.cl")
	password := envOr("SEED_ADMIN_PASSWORD", "admin1234")

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		fail("buscar admin: %v", err)
	}
	if existing != nil {
		fmt.Printf("El usuario %s ya existe, nada que hacer\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña: %v", err)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		fail("crear admin: %v", err)
	}
	fmt.Printf("SUPERADMIN creado: %s\n", email)

	companyRepo := postgres.NewCompanyRepository(pool)
	demo := &entity.Company{
		ID:        uuid.New().String(),
		RUT:       "76.086.428-5",
		Name:      "Constructora Demo SpA",
		Address:   "Av. Providencia 1234, Santiago",
		Industry:  "Construcción",
		Status:    entity.CompanyActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := companyRepo.Create(ctx, demo); err != nil {
		fail("crear empresa demo: %v", err)
	}
	fmt.Printf("Empresa demo creada: %s\n", demo.Name)

	templateRepo := postgres.NewTemplateRepository(pool)
	tpl := &entity.Template{
		ID:          uuid.New().String(),
		Title:       "Inspección de extintores",
		Description: "Checklist básico de extintores portátiles (DS 44)",
		Structure: []entity.Section{
			{
				ID:    uuid.New().String(),
				Title: "Estado general",
				Items: []entity.QuestionItem{
					{ID: uuid.New().String(), Text: "Extintor en su lugar designado y señalizado", Type: entity.QuestionRatingABC},
					{ID: uuid.New().String(), Text: "Manómetro en zona verde", Type: entity.QuestionRatingABC},
					{ID: uuid.New().String(), Text: "Sello y pasador intactos", Type: entity.QuestionRatingABC},
					{ID: uuid.New().String(), Text: "Observaciones", Type: entity.QuestionText},
				},
			},
			{
				ID:    uuid.New().String(),
				Title: "Mantención",
				Items: []entity.QuestionItem{
					{ID: uuid.New().String(), Text: "Certificado de mantención vigente", Type: entity.QuestionYesNo},
					{ID: uuid.New().String(), Text: "Foto de la etiqueta de mantención", Type: entity.QuestionPhoto},
				},
			},
		},
		CustomFields: []entity.CustomField{
			{ID: uuid.New().String(), Label: "Ubicación", Type: entity.FieldText, Required: true},
			{ID: uuid.New().String(), Label: "N° de extintores", Type: entity.FieldNumber, Required: false},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := templateRepo.Create(ctx, tpl); err != nil {
		fail("crear plantilla demo: %v", err)
	}
	fmt.Printf("Plantilla demo creada: %s\n", tpl.Title)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
