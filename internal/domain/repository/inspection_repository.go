package repository

import (
	"context"

	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// InspectionSummary es la fila de listado con los nombres ya resueltos.
type InspectionSummary struct {
	Inspection    entity.Inspection
	CompanyName   string
	WorkerName    string
	TemplateTitle string
}

// InspectionDetail es la inspección completa más los datos relacionados que
// necesitan la vista de ejecución y el PDF.
type InspectionDetail struct {
	Inspection entity.Inspection
	Company    entity.Company
	Worker     entity.Worker
	Template   entity.Template
}

// InspectionRepository define el puerto de persistencia para Inspection (DIP).
// Los documentos embebidos (checklist, valores, fotos) viajan como JSONB.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *entity.Inspection) error
	GetByID(ctx context.Context, id string) (*entity.Inspection, error)
	GetDetail(ctx context.Context, id string) (*InspectionDetail, error)
	// Update reemplaza el registro completo en una sola escritura atómica
	// (last-writer-wins; no hay token de concurrencia optimista).
	Update(ctx context.Context, inspection *entity.Inspection) error
	List(ctx context.Context, limit, offset int) ([]InspectionSummary, int, error)
}
