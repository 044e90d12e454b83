package dto

import "time"

// CreateWorkerRequest entrada para registrar un trabajador.
type CreateWorkerRequest struct {
	Name                  string `json:"name" validate:"required,min=1,max=200"`
	Email                 string `json:"email" validate:"required,email"`
	Role                  string `json:"role"`
	RUT                   string `json:"rut"`
	Phone                 string `json:"phone"`
	CompanyID             string `json:"companyId"`
	SECRegistrationNumber string `json:"secRegistrationNumber"`
	DigitalSignature      string `json:"digitalSignature"`
}

// UpdateWorkerRequest entrada para actualizar un trabajador.
type UpdateWorkerRequest struct {
	Name                  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email                 *string `json:"email" validate:"omitempty,email"`
	Role                  *string `json:"role"`
	RUT                   *string `json:"rut"`
	Phone                 *string `json:"phone"`
	CompanyID             *string `json:"companyId"`
	SECRegistrationNumber *string `json:"secRegistrationNumber"`
	DigitalSignature      *string `json:"digitalSignature"`
}

// WorkerResponse salida de un trabajador.
type WorkerResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role,omitempty"`
	RUT                   string    `json:"rut,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	CompanyID             string    `json:"companyId,omitempty"`
	SECRegistrationNumber string    `json:"secRegistrationNumber,omitempty"`
	DigitalSignature      string    `json:"digitalSignature,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// WorkerListRequest parámetros de listado con búsqueda.
type WorkerListRequest struct {
	PageRequest
	Search string `query:"search"`
}

// WorkerListResponse lista paginada de trabajadores.
type WorkerListResponse struct {
	Data []WorkerResponse `json:"data"`
	Meta Meta             `json:"meta"`
}
