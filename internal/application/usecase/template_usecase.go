package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// TemplateUseCase aplica reglas de negocio para plantillas de checklist.
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// Create crea una plantilla. Solo administradores; título y estructura son
// obligatorios.
func (uc *TemplateUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if !policy.Can(actor, policy.ActionCreate, policy.ResourceTemplate) {
		return nil, domain.ErrForbidden
	}
	if in.Title == "" || in.Structure == nil {
		return nil, domain.ErrInvalidInput
	}
	customFields := in.CustomFields
	if customFields == nil {
		customFields = []entity.CustomField{}
	}

	now := time.Now()
	tpl := &entity.Template{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		Structure:    in.Structure,
		CustomFields: customFields,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl, 0), nil
}

// GetByID obtiene una plantilla por ID.
func (uc *TemplateUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.TemplateResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceTemplate) {
		return nil, domain.ErrForbidden
	}
	tpl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}
	count, err := uc.repo.CountInspections(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl, count), nil
}

// List devuelve todas las plantillas con cuántas inspecciones usa cada una.
func (uc *TemplateUseCase) List(ctx context.Context, actor policy.Actor) (*dto.TemplateListResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceTemplate) {
		return nil, domain.ErrForbidden
	}
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, *toTemplateResponse(&r.Template, r.InspectionCount))
	}
	return &dto.TemplateListResponse{Data: items}, nil
}

// Update reemplaza título, descripción, estructura y campos personalizados.
// Editar la plantilla nunca afecta inspecciones ya creadas: cada inspección
// trabaja sobre su propio snapshot.
func (uc *TemplateUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceTemplate) {
		return nil, domain.ErrForbidden
	}
	if in.Title == "" || in.Structure == nil {
		return nil, domain.ErrInvalidInput
	}
	tpl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}

	tpl.Title = in.Title
	tpl.Description = in.Description
	tpl.Structure = in.Structure
	tpl.CustomFields = in.CustomFields
	if tpl.CustomFields == nil {
		tpl.CustomFields = []entity.CustomField{}
	}
	tpl.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	count, err := uc.repo.CountInspections(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl, count), nil
}

// Delete elimina una plantilla sin uso. Con una o más inspecciones asociadas
// falla con ErrHasDependents: el historial de inspecciones es un registro
// legal y su plantilla de origen no puede desaparecer.
func (uc *TemplateUseCase) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if !policy.Can(actor, policy.ActionDelete, policy.ResourceTemplate) {
		return domain.ErrForbidden
	}
	tpl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountInspections(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasDependents
	}
	return uc.repo.Delete(ctx, id)
}

func toTemplateResponse(t *entity.Template, inspections int) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.TemplateResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Structure:       t.Structure,
		CustomFields:    t.CustomFields,
		InspectionCount: inspections,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
