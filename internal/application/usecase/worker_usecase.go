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
	"github.com/prevenapp/inspecciones-api/pkg/rut"
)

// WorkerUseCase aplica reglas de negocio para trabajadores. El CRUD de
// trabajadores está abierto a cualquier usuario autenticado (decisión de
// producto: todo el personal gestiona la nómina de terreno).
type WorkerUseCase struct {
	repo repository.WorkerRepository
}

// NewWorkerUseCase construye el caso de uso.
func NewWorkerUseCase(repo repository.WorkerRepository) *WorkerUseCase {
	return &WorkerUseCase{repo: repo}
}

// Create registra un trabajador. Email único; el RUT es opcional pero si
// viene debe tener dígito verificador válido. La firma digital se captura una
// vez y se reutiliza como timbre en todas sus inspecciones.
func (uc *WorkerUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateWorkerRequest) (*dto.WorkerResponse, error) {
	if !policy.Can(actor, policy.ActionCreate, policy.ResourceWorker) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	workerRUT := ""
	if in.RUT != "" {
		if !rut.Validate(in.RUT) {
			return nil, domain.ErrInvalidRUT
		}
		workerRUT = rut.Format(in.RUT)
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	worker := &entity.Worker{
		ID:                    uuid.New().String(),
		Name:                  in.Name,
		Email:                 in.Email,
		Role:                  in.Role,
		RUT:                   workerRUT,
		Phone:                 in.Phone,
		CompanyID:             in.CompanyID,
		SECRegistrationNumber: in.SECRegistrationNumber,
		DigitalSignature:      in.DigitalSignature,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(ctx, worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// GetByID obtiene un trabajador por ID.
func (uc *WorkerUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.WorkerResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceWorker) {
		return nil, domain.ErrForbidden
	}
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkerResponse(worker), nil
}

// List busca trabajadores por nombre o email (insensible a acentos) y pagina.
func (uc *WorkerUseCase) List(ctx context.Context, actor policy.Actor, in dto.WorkerListRequest) (*dto.WorkerListResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceWorker) {
		return nil, domain.ErrForbidden
	}
	in.DefaultPage()
	workers, total, err := uc.repo.Search(ctx, in.Search, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		items = append(items, *toWorkerResponse(w))
	}
	return &dto.WorkerListResponse{
		Data: items,
		Meta: dto.NewMeta(total, in.Page, in.Limit),
	}, nil
}

// Update aplica cambios parciales a un trabajador.
func (uc *WorkerUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateWorkerRequest) (*dto.WorkerResponse, error) {
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceWorker) {
		return nil, domain.ErrForbidden
	}
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		worker.Name = *in.Name
	}
	if in.Email != nil && *in.Email != worker.Email {
		other, err := uc.repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		worker.Email = *in.Email
	}
	if in.Role != nil {
		worker.Role = *in.Role
	}
	if in.RUT != nil {
		if *in.RUT == "" {
			worker.RUT = ""
		} else {
			if !rut.Validate(*in.RUT) {
				return nil, domain.ErrInvalidRUT
			}
			worker.RUT = rut.Format(*in.RUT)
		}
	}
	if in.Phone != nil {
		worker.Phone = *in.Phone
	}
	if in.CompanyID != nil {
		worker.CompanyID = *in.CompanyID
	}
	if in.SECRegistrationNumber != nil {
		worker.SECRegistrationNumber = *in.SECRegistrationNumber
	}
	if in.DigitalSignature != nil {
		worker.DigitalSignature = *in.DigitalSignature
	}
	worker.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, worker); err != nil {
		return nil, err
	}
	return toWorkerResponse(worker), nil
}

// Delete elimina un trabajador por ID.
func (uc *WorkerUseCase) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if !policy.Can(actor, policy.ActionDelete, policy.ResourceWorker) {
		return domain.ErrForbidden
	}
	worker, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if worker == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toWorkerResponse(w *entity.Worker) *dto.WorkerResponse {
	if w == nil {
		return nil
	}
	return &dto.WorkerResponse{
		ID:                    w.ID,
		Name:                  w.Name,
		Email:                 w.Email,
		Role:                  w.Role,
		RUT:                   w.RUT,
		Phone:                 w.Phone,
		CompanyID:             w.CompanyID,
		SECRegistrationNumber: w.SECRegistrationNumber,
		DigitalSignature:      w.DigitalSignature,
		CreatedAt:             w.CreatedAt,
	}
}
