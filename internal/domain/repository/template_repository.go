package repository

import (
	"context"

	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// TemplateWithUsage acompaña la plantilla con cuántas inspecciones la usan.
type TemplateWithUsage struct {
	Template        entity.Template
	InspectionCount int
}

// TemplateRepository define el puerto de persistencia para Template (DIP).
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	GetByID(ctx context.Context, id string) (*entity.Template, error)
	Update(ctx context.Context, template *entity.Template) error
	List(ctx context.Context) ([]TemplateWithUsage, error)
	CountInspections(ctx context.Context, templateID string) (int, error)
	// Delete falla con domain.ErrHasDependents si existe al menos una
	// inspección que referencia la plantilla (requisito legal de auditoría).
	Delete(ctx context.Context, id string) error
}
