package entity

import "time"

// Estados del ciclo de vida de una inspección. La única transición válida es
// DRAFT -> COMPLETED; COMPLETED es terminal.
const (
	InspectionDraft     = "DRAFT"
	InspectionCompleted = "COMPLETED"
)

// Photo es una evidencia fotográfica embebida en la inspección. URL lleva el
// payload codificado inline (data URL), no una referencia a un blob externo.
type Photo struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
}

// Inspection es una ejecución de una plantilla contra una empresa y un
// trabajador. ChecklistData es una copia profunda e independiente de la
// estructura de la plantilla tomada al momento de crear la inspección:
// editar la plantilla después nunca altera inspecciones existentes.
//
// Una vez firmada y COMPLETED, checklist, valores, fotos y firma quedan
// inmutables (se exige en el dominio, no solo en la UI).
type Inspection struct {
	ID            string
	CompanyID     string
	WorkerID      string
	TemplateID    string
	UserID        string // usuario que creó la inspección
	Title         string
	Status        string // DRAFT, COMPLETED
	ChecklistData []Section
	CustomValues  map[string]string // id de CustomField -> valor ingresado
	Score         int               // 0–100, tasa de completitud (no de calidad)
	Signature     string            // firma de cierre (data URL)
	Photos        []Photo
	SignedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Locked informa si la inspección ya es inmutable.
func (i *Inspection) Locked() bool {
	return i.Status == InspectionCompleted
}
