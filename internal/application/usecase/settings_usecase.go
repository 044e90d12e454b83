package usecase

import (
	"context"
	"time"

	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
	"github.com/prevenapp/inspecciones-api/pkg/rut"
)

// SettingsUseCase pantalla de configuración: perfil propio + empresa.
type SettingsUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) *SettingsUseCase {
	return &SettingsUseCase{userRepo: userRepo, companyRepo: companyRepo}
}

// Get devuelve el perfil del actor y, si pertenece a una, su empresa.
func (uc *SettingsUseCase) Get(ctx context.Context, actor policy.Actor) (*dto.SettingsResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.SettingsResponse{
		User: dto.SettingsUser{Name: user.Name, Email: user.Email, Role: user.Role},
	}
	if user.CompanyID != "" {
		company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		resp.Company = toCompanyResponse(company, 0, 0)
	}
	return resp, nil
}

// Update guarda la configuración. El nombre propio lo cambia cualquier rol;
// email y rol solo un SUPERADMIN (incluido el suyo). Los campos de empresa
// actualizan la empresa del actor si tiene una; el RUT se re-valida.
// Toda la petición se valida antes de tocar la base: si algo falla no se
// persiste ningún cambio, ni de usuario ni de empresa.
func (uc *SettingsUseCase) Update(ctx context.Context, actor policy.Actor, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.UserEmail != "" && in.UserEmail != user.Email {
		if !policy.CanChangeEmailOrRole(actor) {
			return nil, domain.ErrForbidden
		}
		other, err := uc.userRepo.GetByEmail(ctx, in.UserEmail)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if in.UserRole != "" && in.UserRole != user.Role && !policy.CanChangeEmailOrRole(actor) {
		return nil, domain.ErrForbidden
	}
	if in.CompanyRUT != "" && !rut.Validate(in.CompanyRUT) {
		return nil, domain.ErrInvalidRUT
	}

	var company *entity.Company
	if in.CompanyName != "" && user.CompanyID != "" {
		company, err = uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
	}

	if in.UserName != "" && policy.CanUpdateOwnName(actor) {
		user.Name = in.UserName
	}
	if in.UserEmail != "" {
		user.Email = in.UserEmail
	}
	if in.UserRole != "" {
		user.Role = in.UserRole
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if company != nil {
		company.Name = in.CompanyName
		if in.CompanyRUT != "" {
			company.RUT = rut.Format(in.CompanyRUT)
		}
		if in.CompanyAddress != "" {
			company.Address = in.CompanyAddress
		}
		if in.CompanyLogoURL != "" {
			company.LogoURL = in.CompanyLogoURL
		}
		company.UpdatedAt = time.Now()
		if err := uc.companyRepo.Update(ctx, company); err != nil {
			return nil, err
		}
	}

	return uc.Get(ctx, actor)
}
