package dto

import (
	"time"

	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// CreateInspectionRequest entrada para iniciar una inspección (borrador).
type CreateInspectionRequest struct {
	CompanyID  string `json:"companyId" validate:"required"`
	WorkerID   string `json:"workerId" validate:"required"`
	TemplateID string `json:"templateId" validate:"required"`
}

// AnswerPatch es la respuesta de un ítem dentro del PATCH de una inspección.
type AnswerPatch struct {
	SectionID string  `json:"sectionId" validate:"required"`
	ItemID    string  `json:"itemId" validate:"required"`
	Answer    *string `json:"answer"`
}

// UpdateInspectionRequest entrada del PATCH. El cliente envía respuestas y
// valores; la estructura del snapshot y el puntaje nunca se aceptan desde el
// cliente (el servidor recalcula el score en cada escritura).
type UpdateInspectionRequest struct {
	Answers      []AnswerPatch     `json:"answers"`
	CustomValues map[string]string `json:"customValues"`
	// Status "COMPLETED" junto con Signature dispara la finalización.
	Status    string `json:"status" validate:"omitempty,oneof=DRAFT COMPLETED"`
	Signature string `json:"signature"`
}

// AddPhotoRequest entrada para adjuntar una evidencia fotográfica.
type AddPhotoRequest struct {
	ID        string    `json:"id" validate:"required"`
	URL       string    `json:"url" validate:"required"`
	Timestamp time.Time `json:"timestamp"`
}

// FinalizeInspectionRequest entrada para cerrar y firmar una inspección.
type FinalizeInspectionRequest struct {
	Signature string `json:"signature" validate:"required"`
}

// InspectionResponse salida completa de una inspección.
type InspectionResponse struct {
	ID            string               `json:"id"`
	CompanyID     string               `json:"companyId"`
	WorkerID      string               `json:"workerId"`
	TemplateID    string               `json:"templateId"`
	UserID        string               `json:"userId"`
	Title         string               `json:"title"`
	Status        string               `json:"status"`
	ChecklistData []entity.Section     `json:"checklistData"`
	CustomValues  map[string]string    `json:"customValues"`
	Score         int                  `json:"score"`
	Signature     string               `json:"signature,omitempty"`
	Photos        []entity.Photo       `json:"photos"`
	SignedAt      *time.Time           `json:"signedAt,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	Company       *InspectionCompany   `json:"company,omitempty"`
	Worker        *InspectionWorker    `json:"worker,omitempty"`
	Template      *InspectionTemplate  `json:"template,omitempty"`
}

// InspectionCompany datos de la empresa embebidos en la vista de detalle.
type InspectionCompany struct {
	Name string `json:"name"`
	RUT  string `json:"rut"`
}

// InspectionWorker datos del trabajador embebidos en la vista de detalle.
type InspectionWorker struct {
	Name                  string `json:"name"`
	Role                  string `json:"role,omitempty"`
	RUT                   string `json:"rut,omitempty"`
	SECRegistrationNumber string `json:"secRegistrationNumber,omitempty"`
	DigitalSignature      string `json:"digitalSignature,omitempty"`
}

// InspectionTemplate datos de la plantilla embebidos en la vista de detalle.
type InspectionTemplate struct {
	Title        string               `json:"title"`
	CustomFields []entity.CustomField `json:"customFields"`
}

// InspectionSummaryResponse fila del listado de inspecciones.
type InspectionSummaryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	Score         int       `json:"score"`
	CompanyName   string    `json:"companyName"`
	WorkerName    string    `json:"workerName"`
	TemplateTitle string    `json:"templateTitle"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InspectionListResponse lista paginada de inspecciones.
type InspectionListResponse struct {
	Data []InspectionSummaryResponse `json:"data"`
	Meta Meta                        `json:"meta"`
}
