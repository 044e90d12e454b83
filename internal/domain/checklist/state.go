package checklist

import (
	"math"
	"strings"
	"time"

	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// SetAnswer reemplaza la respuesta de un ítem ubicándolo por id de sección e
// id de ítem. Falla con ErrLocked si la inspección ya está COMPLETED y con
// ErrNotFound si los ids no calzan. El orden de secciones e ítems no se toca.
func SetAnswer(insp *entity.Inspection, sectionID, itemID string, answer *string) error {
	if insp.Locked() {
		return domain.ErrLocked
	}
	for si := range insp.ChecklistData {
		if insp.ChecklistData[si].ID != sectionID {
			continue
		}
		items := insp.ChecklistData[si].Items
		for ii := range items {
			if items[ii].ID == itemID {
				items[ii].Answer = answer
				return nil
			}
		}
		return domain.ErrNotFound
	}
	return domain.ErrNotFound
}

// SetCustomValue asigna el valor de un campo personalizado. El snapshot
// siembra todas las claves al crear el borrador, así que una clave desconocida
// significa que el campo no existía en la plantilla al momento del snapshot.
func SetCustomValue(insp *entity.Inspection, fieldID, value string) error {
	if insp.Locked() {
		return domain.ErrLocked
	}
	if _, ok := insp.CustomValues[fieldID]; !ok {
		return domain.ErrNotFound
	}
	insp.CustomValues[fieldID] = value
	return nil
}

// AddPhoto agrega una evidencia al final de la lista (orden de inserción).
func AddPhoto(insp *entity.Inspection, photo entity.Photo) error {
	if insp.Locked() {
		return domain.ErrLocked
	}
	if photo.ID == "" || photo.URL == "" {
		return domain.ErrInvalidInput
	}
	insp.Photos = append(insp.Photos, photo)
	return nil
}

// RemovePhoto elimina una evidencia por id, preservando el orden del resto.
func RemovePhoto(insp *entity.Inspection, photoID string) error {
	if insp.Locked() {
		return domain.ErrLocked
	}
	for i, p := range insp.Photos {
		if p.ID == photoID {
			insp.Photos = append(insp.Photos[:i], insp.Photos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ComputeScore calcula la tasa de completitud: porcentaje de ítems YES_NO y
// RATING_ABC con respuesta distinta de nil/"N/A". No es una nota de calidad:
// "B" y "M" cuentan igual. Sin ítems puntuables el resultado es 0.
func ComputeScore(insp *entity.Inspection) int {
	total := 0
	done := 0
	for _, s := range insp.ChecklistData {
		for _, it := range s.Items {
			if !it.Type.Scorable() {
				continue
			}
			total++
			if answered(it.Answer) {
				done++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// Finalize cierra la inspección: exige firma no vacía, recalcula el puntaje
// en el servidor (nunca se confía en un puntaje enviado por el cliente) y
// transiciona a COMPLETED dejando el registro inmutable. Finalizar dos veces
// falla con ErrLocked, lo que evita un doble cierre con puntaje distinto.
func Finalize(insp *entity.Inspection, signature string, now time.Time) error {
	if insp.Locked() {
		return domain.ErrLocked
	}
	if strings.TrimSpace(signature) == "" {
		return domain.ErrInvalidInput
	}
	insp.Score = ComputeScore(insp)
	insp.Signature = signature
	insp.Status = entity.InspectionCompleted
	insp.SignedAt = &now
	insp.UpdatedAt = now
	return nil
}
