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

// CompanyUseCase aplica reglas de negocio para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa. Exige rol administrador, RUT con dígito verificador
// válido y único. El RUT se guarda formateado para que el índice único calce
// sin importar cómo lo escribió el usuario.
func (uc *CompanyUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !policy.Can(actor, policy.ActionCreate, policy.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.RUT == "" {
		return nil, domain.ErrInvalidInput
	}
	if !rut.Validate(in.RUT) {
		return nil, domain.ErrInvalidRUT
	}
	formatted := rut.Format(in.RUT)

	existing, err := uc.repo.GetByRUT(ctx, formatted)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		RUT:       formatted,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Industry:  in.Industry,
		Status:    entity.CompanyActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company, 0, 0), nil
}

// GetByID obtiene una empresa por ID. Devuelve ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.CompanyResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company, 0, 0), nil
}

// List lista empresas con sus conteos de trabajadores e inspecciones.
func (uc *CompanyUseCase) List(ctx context.Context, actor policy.Actor, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	rows, total, err := uc.repo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, *toCompanyResponse(&r.Company, r.WorkerCount, r.InspectionCount))
	}
	return &dto.CompanyListResponse{
		Data: items,
		Meta: dto.NewMeta(total, page.Page, page.Limit),
	}, nil
}

// Update aplica cambios parciales. Si cambia el RUT se vuelve a validar.
func (uc *CompanyUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !policy.Can(actor, policy.ActionUpdate, policy.ResourceCompany) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.RUT != nil {
		if !rut.Validate(*in.RUT) {
			return nil, domain.ErrInvalidRUT
		}
		company.RUT = rut.Format(*in.RUT)
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Industry != nil {
		company.Industry = *in.Industry
	}
	if in.Status != nil {
		company.Status = *in.Status
	}
	if in.LogoURL != nil {
		company.LogoURL = *in.LogoURL
	}
	company.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company, 0, 0), nil
}

// Delete elimina una empresa. Falla con ErrHasDependents si tiene
// trabajadores o inspecciones asociadas (nunca se borra historial).
func (uc *CompanyUseCase) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if !policy.Can(actor, policy.ActionDelete, policy.ResourceCompany) {
		return domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toCompanyResponse(c *entity.Company, workers, inspections int) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:              c.ID,
		RUT:             c.RUT,
		Name:            c.Name,
		Address:         c.Address,
		Phone:           c.Phone,
		Industry:        c.Industry,
		Status:          c.Status,
		LogoURL:         c.LogoURL,
		WorkerCount:     workers,
		InspectionCount: inspections,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
