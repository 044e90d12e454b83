package repository

import (
	"context"

	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// CompanyWithCounts acompaña la empresa con los conteos que muestra el panel.
type CompanyWithCounts struct {
	Company         entity.Company
	WorkerCount     int
	InspectionCount int
}

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. GetByID/GetByRUT devuelven
// (nil, nil) cuando no hay fila.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByRUT(ctx context.Context, rut string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// List devuelve la página pedida y el total de empresas para el
	// envelope de paginación.
	List(ctx context.Context, limit, offset int) ([]CompanyWithCounts, int, error)
	// Delete falla con domain.ErrHasDependents si la empresa tiene
	// trabajadores o inspecciones asociadas.
	Delete(ctx context.Context, id string) error
}
