// Package checklist contiene la lógica pura del ciclo de vida de una
// inspección: el snapshot de la plantilla al crearla, la máquina de estados
// DRAFT -> COMPLETED y el cálculo del puntaje de completitud.
package checklist

import (
	"strings"
	"time"

	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// NewDraft construye una inspección en borrador a partir de una plantilla.
//
// La estructura de la plantilla se copia en profundidad a ChecklistData y los
// campos personalizados se siembran como claves vacías en CustomValues. Esa
// copia es independiente: mutar la plantilla después no tiene ningún efecto
// observable sobre la inspección (invariante central del sistema).
func NewDraft(id string, tpl *entity.Template, companyID, workerID, userID string, now time.Time) (*entity.Inspection, error) {
	if companyID == "" || workerID == "" || tpl == nil || tpl.ID == "" {
		return nil, domain.ErrInvalidInput
	}

	values := make(map[string]string, len(tpl.CustomFields))
	for _, f := range tpl.CustomFields {
		values[f.ID] = ""
	}

	return &entity.Inspection{
		ID:            id,
		CompanyID:     companyID,
		WorkerID:      workerID,
		TemplateID:    tpl.ID,
		UserID:        userID,
		Title:         tpl.Title,
		Status:        entity.InspectionDraft,
		ChecklistData: SnapshotStructure(tpl.Structure),
		CustomValues:  values,
		Score:         0,
		Photos:        []entity.Photo{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// SnapshotStructure devuelve una copia profunda de las secciones, preservando
// el orden de secciones e ítems. Los punteros Answer también se clonan para
// que ninguna mutación posterior de la fuente alcance a la copia.
func SnapshotStructure(src []entity.Section) []entity.Section {
	out := make([]entity.Section, len(src))
	for i, s := range src {
		items := make([]entity.QuestionItem, len(s.Items))
		for j, it := range s.Items {
			copied := it
			if it.Answer != nil {
				v := *it.Answer
				copied.Answer = &v
			}
			items[j] = copied
		}
		out[i] = entity.Section{ID: s.ID, Title: s.Title, Items: items}
	}
	return out
}

// answered informa si una respuesta cuenta como contestada para el puntaje:
// no nil, no vacía y distinta de "N/A" (sin distinguir mayúsculas).
func answered(a *string) bool {
	if a == nil {
		return false
	}
	v := strings.TrimSpace(*a)
	return v != "" && !strings.EqualFold(v, entity.AnswerNA)
}
