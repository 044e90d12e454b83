package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	RUT      string `json:"rut" validate:"required,min=8,max=12"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Industry string `json:"industry"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	RUT      *string `json:"rut" validate:"omitempty,min=8,max=12"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Industry *string `json:"industry"`
	Status   *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE PENDING"`
	LogoURL  *string `json:"logoUrl"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID              string    `json:"id"`
	RUT             string    `json:"rut"`
	Name            string    `json:"name"`
	Address         string    `json:"address,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	Status          string    `json:"status"`
	LogoURL         string    `json:"logoUrl,omitempty"`
	WorkerCount     int       `json:"workerCount"`
	InspectionCount int       `json:"inspectionCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Data []CompanyResponse `json:"data"`
	Meta Meta              `json:"meta"`
}
