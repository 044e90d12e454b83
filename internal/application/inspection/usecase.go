// Package inspection orquesta el ciclo de vida de una inspección sobre la
// lógica pura de domain/checklist: snapshot al crear, mutaciones en DRAFT y
// cierre firmado a COMPLETED.
package inspection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/checklist"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// UseCase casos de uso de inspecciones.
type UseCase struct {
	inspectionRepo repository.InspectionRepository
	templateRepo   repository.TemplateRepository
	companyRepo    repository.CompanyRepository
	workerRepo     repository.WorkerRepository
}

// NewUseCase construye el caso de uso con sus puertos de persistencia.
func NewUseCase(
	inspectionRepo repository.InspectionRepository,
	templateRepo repository.TemplateRepository,
	companyRepo repository.CompanyRepository,
	workerRepo repository.WorkerRepository,
) *UseCase {
	return &UseCase{
		inspectionRepo: inspectionRepo,
		templateRepo:   templateRepo,
		companyRepo:    companyRepo,
		workerRepo:     workerRepo,
	}
}

// Create inicia una inspección en borrador: verifica que empresa, trabajador
// y plantilla existan y toma el snapshot profundo de la estructura. A partir
// de aquí la inspección vive desacoplada de la plantilla.
func (uc *UseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateInspectionRequest) (*dto.InspectionResponse, error) {
	if !policy.Can(actor, policy.ActionCreate, policy.ResourceInspection) {
		return nil, domain.ErrForbidden
	}
	if in.CompanyID == "" || in.WorkerID == "" || in.TemplateID == "" {
		return nil, domain.ErrInvalidInput
	}

	tpl, err := uc.templateRepo.GetByID(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	worker, err := uc.workerRepo.GetByID(ctx, in.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}

	insp, err := checklist.NewDraft(uuid.New().String(), tpl, in.CompanyID, in.WorkerID, actor.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.inspectionRepo.Create(ctx, insp); err != nil {
		return nil, err
	}
	return toInspectionResponse(insp, nil), nil
}

// Get devuelve la inspección con los datos relacionados que necesita la
// vista de ejecución (empresa, trabajador y esquema de campos de la plantilla).
func (uc *UseCase) Get(ctx context.Context, actor policy.Actor, id string) (*dto.InspectionResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceInspection) {
		return nil, domain.ErrForbidden
	}
	detail, err := uc.inspectionRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return toInspectionResponse(&detail.Inspection, detail), nil
}

// List devuelve el listado paginado con los nombres resueltos.
func (uc *UseCase) List(ctx context.Context, actor policy.Actor, page dto.PageRequest) (*dto.InspectionListResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceInspection) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	rows, total, err := uc.inspectionRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.InspectionSummaryResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.InspectionSummaryResponse{
			ID:            r.Inspection.ID,
			Title:         r.Inspection.Title,
			Status:        r.Inspection.Status,
			Score:         r.Inspection.Score,
			CompanyName:   r.CompanyName,
			WorkerName:    r.WorkerName,
			TemplateTitle: r.TemplateTitle,
			CreatedAt:     r.Inspection.CreatedAt,
		})
	}
	return &dto.InspectionListResponse{
		Data: items,
		Meta: dto.NewMeta(total, page.Page, page.Limit),
	}, nil
}

// Update aplica el PATCH de avance. Las respuestas entran una a una por la
// máquina de estados, así el cliente no puede alterar la estructura del
// snapshot ni escribir en una inspección COMPLETED. El puntaje se recalcula
// siempre en el servidor; cualquier score enviado por el cliente se ignora.
// Si el PATCH trae status COMPLETED se finaliza con la firma incluida.
func (uc *UseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateInspectionRequest) (*dto.InspectionResponse, error) {
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceInspection) {
		return nil, domain.ErrForbidden
	}
	insp, err := uc.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, domain.ErrNotFound
	}

	for _, a := range in.Answers {
		if err := checklist.SetAnswer(insp, a.SectionID, a.ItemID, a.Answer); err != nil {
			return nil, err
		}
	}
	for fieldID, value := range in.CustomValues {
		if err := checklist.SetCustomValue(insp, fieldID, value); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if in.Status == entity.InspectionCompleted {
		if err := checklist.Finalize(insp, in.Signature, now); err != nil {
			return nil, err
		}
	} else {
		if insp.Locked() {
			return nil, domain.ErrLocked
		}
		insp.Score = checklist.ComputeScore(insp)
		insp.UpdatedAt = now
	}

	if err := uc.inspectionRepo.Update(ctx, insp); err != nil {
		return nil, err
	}
	return toInspectionResponse(insp, nil), nil
}

// AddPhoto adjunta una evidencia fotográfica (payload inline).
func (uc *UseCase) AddPhoto(ctx context.Context, actor policy.Actor, id string, in dto.AddPhotoRequest) (*dto.InspectionResponse, error) {
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceInspection) {
		return nil, domain.ErrForbidden
	}
	insp, err := uc.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, domain.ErrNotFound
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	if err := checklist.AddPhoto(insp, entity.Photo{ID: in.ID, URL: in.URL, Timestamp: ts}); err != nil {
		return nil, err
	}
	insp.UpdatedAt = time.Now()
	if err := uc.inspectionRepo.Update(ctx, insp); err != nil {
		return nil, err
	}
	return toInspectionResponse(insp, nil), nil
}

// RemovePhoto elimina una evidencia por id.
func (uc *UseCase) RemovePhoto(ctx context.Context, actor policy.Actor, id, photoID string) (*dto.InspectionResponse, error) {
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceInspection) {
		return nil, domain.ErrForbidden
	}
	insp, err := uc.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, domain.ErrNotFound
	}
	if err := checklist.RemovePhoto(insp, photoID); err != nil {
		return nil, err
	}
	insp.UpdatedAt = time.Now()
	if err := uc.inspectionRepo.Update(ctx, insp); err != nil {
		return nil, err
	}
	return toInspectionResponse(insp, nil), nil
}

// Finalize cierra y firma la inspección. La transición es terminal: después
// de esto toda mutación falla con ErrLocked.
func (uc *UseCase) Finalize(ctx context.Context, actor policy.Actor, id string, in dto.FinalizeInspectionRequest) (*dto.InspectionResponse, error) {
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceInspection) {
		return nil, domain.ErrForbidden
	}
	insp, err := uc.inspectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, domain.ErrNotFound
	}
	if err := checklist.Finalize(insp, in.Signature, time.Now()); err != nil {
		return nil, err
	}
	if err := uc.inspectionRepo.Update(ctx, insp); err != nil {
		return nil, err
	}
	return toInspectionResponse(insp, nil), nil
}

func toInspectionResponse(i *entity.Inspection, detail *repository.InspectionDetail) *dto.InspectionResponse {
	if i == nil {
		return nil
	}
	resp := &dto.InspectionResponse{
		ID:            i.ID,
		CompanyID:     i.CompanyID,
		WorkerID:      i.WorkerID,
		TemplateID:    i.TemplateID,
		UserID:        i.UserID,
		Title:         i.Title,
		Status:        i.Status,
		ChecklistData: i.ChecklistData,
		CustomValues:  i.CustomValues,
		Score:         i.Score,
		Signature:     i.Signature,
		Photos:        i.Photos,
		SignedAt:      i.SignedAt,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	if detail != nil {
		resp.Company = &dto.InspectionCompany{Name: detail.Company.Name, RUT: detail.Company.RUT}
		resp.Worker = &dto.InspectionWorker{
			Name:                  detail.Worker.Name,
			Role:                  detail.Worker.Role,
			RUT:                   detail.Worker.RUT,
			SECRegistrationNumber: detail.Worker.SECRegistrationNumber,
			DigitalSignature:      detail.Worker.DigitalSignature,
		}
		resp.Template = &dto.InspectionTemplate{
			Title:        detail.Template.Title,
			CustomFields: detail.Template.CustomFields,
		}
	}
	return resp
}
