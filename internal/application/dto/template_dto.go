package dto

import (
	"time"

	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// CreateTemplateRequest entrada para crear una plantilla de checklist.
type CreateTemplateRequest struct {
	Title        string               `json:"title" validate:"required,min=1,max=200"`
	Description  string               `json:"description"`
	Structure    []entity.Section     `json:"structure" validate:"required"`
	CustomFields []entity.CustomField `json:"customFields"`
}

// UpdateTemplateRequest entrada para actualizar una plantilla.
type UpdateTemplateRequest struct {
	Title        string               `json:"title" validate:"required,min=1,max=200"`
	Description  string               `json:"description"`
	Structure    []entity.Section     `json:"structure" validate:"required"`
	CustomFields []entity.CustomField `json:"customFields"`
}

// TemplateResponse salida de una plantilla.
type TemplateResponse struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	Structure       []entity.Section     `json:"structure"`
	CustomFields    []entity.CustomField `json:"customFields"`
	InspectionCount int                  `json:"inspectionCount"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// TemplateListResponse lista de plantillas con su uso.
type TemplateListResponse struct {
	Data []TemplateResponse `json:"data"`
}
