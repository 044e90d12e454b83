package entity

import "time"

// QuestionType discrimina el tipo de un ítem del checklist.
type QuestionType string

const (
	QuestionYesNo     QuestionType = "YES_NO"
	QuestionText      QuestionType = "TEXT"
	QuestionPhoto     QuestionType = "PHOTO"
	QuestionRatingABC QuestionType = "RATING_ABC"
	QuestionSignature QuestionType = "SIGNATURE"
)

// Scorable informa si el tipo de pregunta cuenta para el puntaje de
// cumplimiento. TEXT, PHOTO y SIGNATURE quedan fuera del cálculo.
func (q QuestionType) Scorable() bool {
	return q == QuestionYesNo || q == QuestionRatingABC
}

// FieldType discrimina el tipo de un campo personalizado de cabecera.
type FieldType string

const (
	FieldText   FieldType = "TEXT"
	FieldNumber FieldType = "NUMBER"
	FieldDate   FieldType = "DATE"
)

// AnswerNA es la respuesta "No Aplica"; cuenta como no respondida para el puntaje.
const AnswerNA = "N/A"

// QuestionItem es un ítem individual dentro de una sección del checklist.
// Answer es nil mientras no se responde; para RATING_ABC toma "B", "M" o "N/A".
type QuestionItem struct {
	ID     string       `json:"id"`
	Text   string       `json:"text"`
	Type   QuestionType `json:"type"`
	Answer *string      `json:"answer,omitempty"`
}

// Section agrupa ítems del checklist. El orden de secciones e ítems se preserva.
type Section struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Items []QuestionItem `json:"items"`
}

// CustomField define un campo de cabecera configurable por plantilla
// (ej: "Kilometraje", NUMBER, requerido).
type CustomField struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

// Template es la definición reutilizable de un checklist. Es editable mientras
// no acumule inspecciones; una vez referenciada por una inspección no puede
// eliminarse (requisito legal de auditoría).
type Template struct {
	ID           string
	Title        string
	Description  string
	Structure    []Section
	CustomFields []CustomField
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
