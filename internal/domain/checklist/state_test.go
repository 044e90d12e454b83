package checklist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/checklist"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

const testSignature = "data:image/png;base64,iVBORw0KGgo="

// inspección con 4 ítems RATING_ABC en una sección, sin responder.
func buildRatingInspection(t *testing.T) *entity.Inspection {
	t.Helper()
	tpl := &entity.Template{
		ID:    "tpl-1",
		Title: "Inspección de andamios",
		Structure: []entity.Section{{
			ID:    "sec-1",
			Title: "Estructura",
			Items: []entity.QuestionItem{
				{ID: "i1", Text: "Bases niveladas", Type: entity.QuestionRatingABC},
				{ID: "i2", Text: "Arriostramiento completo", Type: entity.QuestionRatingABC},
				{ID: "i3", Text: "Plataformas sin daño", Type: entity.QuestionRatingABC},
				{ID: "i4", Text: "Barandas instaladas", Type: entity.QuestionRatingABC},
			},
		}},
	}
	insp, err := checklist.NewDraft("insp-1", tpl, "comp-1", "work-1", "user-1", time.Now())
	require.NoError(t, err)
	return insp
}

// ── SetAnswer ─────────────────────────────────────────────────────────────────

func TestSetAnswer_ReemplazaRespuesta(t *testing.T) {
	insp := buildRatingInspection(t)

	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i1", strptr("B")))
	require.NotNil(t, insp.ChecklistData[0].Items[0].Answer)
	assert.Equal(t, "B", *insp.ChecklistData[0].Items[0].Answer)

	// Reemplazo, no acumulación.
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i1", strptr("M")))
	assert.Equal(t, "M", *insp.ChecklistData[0].Items[0].Answer)
}

func TestSetAnswer_PreservaOrden(t *testing.T) {
	insp := buildRatingInspection(t)
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i3", strptr("B")))

	ids := make([]string, 0, 4)
	for _, it := range insp.ChecklistData[0].Items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"i1", "i2", "i3", "i4"}, ids, "el orden de los ítems no cambia")
}

func TestSetAnswer_IdsInexistentes(t *testing.T) {
	insp := buildRatingInspection(t)
	assert.ErrorIs(t, checklist.SetAnswer(insp, "sec-x", "i1", strptr("B")), domain.ErrNotFound)
	assert.ErrorIs(t, checklist.SetAnswer(insp, "sec-1", "i-x", strptr("B")), domain.ErrNotFound)
}

// ── ComputeScore ──────────────────────────────────────────────────────────────

// Vector del contrato: 4 ítems RATING_ABC, 3 respondidos (2xB, 1xM), 1 sin
// responder => 75. El puntaje es completitud, no calidad: la "M" cuenta igual.
func TestComputeScore_TasaDeCompletitud(t *testing.T) {
	insp := buildRatingInspection(t)
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i1", strptr("B")))
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i2", strptr("B")))
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i3", strptr("M")))

	assert.Equal(t, 75, checklist.ComputeScore(insp))
}

func TestComputeScore_NAEsNoRespondida(t *testing.T) {
	insp := buildRatingInspection(t)
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i1", strptr("B")))
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i2", strptr("N/A")))

	assert.Equal(t, 25, checklist.ComputeScore(insp), "N/A no suma al numerador")
}

func TestComputeScore_IgnoraTiposNoPuntuables(t *testing.T) {
	tpl := &entity.Template{
		ID: "tpl-2", Title: "Mixta",
		Structure: []entity.Section{{
			ID: "s", Title: "S",
			Items: []entity.QuestionItem{
				{ID: "a", Type: entity.QuestionYesNo, Answer: nil},
				{ID: "b", Type: entity.QuestionText, Answer: strptr("observación larga")},
				{ID: "c", Type: entity.QuestionPhoto, Answer: strptr("data:image/png;base64,x")},
				{ID: "d", Type: entity.QuestionSignature},
			},
		}},
	}
	insp, err := checklist.NewDraft("i", tpl, "c", "w", "u", time.Now())
	require.NoError(t, err)
	require.NoError(t, checklist.SetAnswer(insp, "s", "a", strptr("SI")))

	// Solo el YES_NO puntúa: 1 de 1 => 100.
	assert.Equal(t, 100, checklist.ComputeScore(insp))
}

func TestComputeScore_SinItemsPuntuables(t *testing.T) {
	tpl := &entity.Template{
		ID: "tpl-3", Title: "Solo texto",
		Structure: []entity.Section{{
			ID: "s", Title: "S",
			Items: []entity.QuestionItem{{ID: "a", Type: entity.QuestionText}},
		}},
	}
	insp, err := checklist.NewDraft("i", tpl, "c", "w", "u", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, checklist.ComputeScore(insp), "sin división por cero")
}

// ── Fotos ─────────────────────────────────────────────────────────────────────

func TestPhotos_AgregarYQuitar(t *testing.T) {
	insp := buildRatingInspection(t)
	now := time.Now()

	require.NoError(t, checklist.AddPhoto(insp, entity.Photo{ID: "p1", URL: "data:image/jpeg;base64,a", Timestamp: now}))
	require.NoError(t, checklist.AddPhoto(insp, entity.Photo{ID: "p2", URL: "data:image/jpeg;base64,b", Timestamp: now}))
	require.Len(t, insp.Photos, 2)
	assert.Equal(t, "p1", insp.Photos[0].ID, "orden de inserción")

	require.NoError(t, checklist.RemovePhoto(insp, "p1"))
	require.Len(t, insp.Photos, 1)
	assert.Equal(t, "p2", insp.Photos[0].ID)

	assert.ErrorIs(t, checklist.RemovePhoto(insp, "p-x"), domain.ErrNotFound)
}

func TestAddPhoto_PayloadIncompleto(t *testing.T) {
	insp := buildRatingInspection(t)
	assert.ErrorIs(t, checklist.AddPhoto(insp, entity.Photo{ID: "", URL: "x"}), domain.ErrInvalidInput)
	assert.ErrorIs(t, checklist.AddPhoto(insp, entity.Photo{ID: "p", URL: ""}), domain.ErrInvalidInput)
}

// ── Finalize y bloqueo ────────────────────────────────────────────────────────

func TestFinalize_CalculaPuntajeYFirma(t *testing.T) {
	insp := buildRatingInspection(t)
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i1", strptr("B")))
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i2", strptr("B")))
	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "i3", strptr("M")))

	// Puntaje basura precargado: Finalize siempre recalcula en el servidor.
	insp.Score = 999

	now := time.Now()
	require.NoError(t, checklist.Finalize(insp, testSignature, now))

	assert.Equal(t, entity.InspectionCompleted, insp.Status)
	assert.Equal(t, 75, insp.Score)
	assert.Equal(t, testSignature, insp.Signature)
	require.NotNil(t, insp.SignedAt)
	assert.Equal(t, now, *insp.SignedAt)
}

func TestFinalize_FirmaVacia(t *testing.T) {
	insp := buildRatingInspection(t)
	assert.ErrorIs(t, checklist.Finalize(insp, "", time.Now()), domain.ErrInvalidInput)
	assert.ErrorIs(t, checklist.Finalize(insp, "   ", time.Now()), domain.ErrInvalidInput)
	assert.Equal(t, entity.InspectionDraft, insp.Status, "sin firma no hay transición")
}

func TestFinalize_DobleCierre(t *testing.T) {
	insp := buildRatingInspection(t)
	require.NoError(t, checklist.Finalize(insp, testSignature, time.Now()))

	err := checklist.Finalize(insp, testSignature, time.Now())
	assert.ErrorIs(t, err, domain.ErrLocked, "re-finalizar una inspección COMPLETED se rechaza")
}

// Después de COMPLETED toda mutación falla con ErrLocked: la inmutabilidad se
// exige en el dominio, no solo en la UI.
func TestLocked_MutacionesRechazadas(t *testing.T) {
	insp := buildRatingInspection(t)
	require.NoError(t, checklist.Finalize(insp, testSignature, time.Now()))

	assert.ErrorIs(t, checklist.SetAnswer(insp, "sec-1", "i4", strptr("B")), domain.ErrLocked)
	assert.ErrorIs(t, checklist.AddPhoto(insp, entity.Photo{ID: "p", URL: "u"}), domain.ErrLocked)
	assert.ErrorIs(t, checklist.RemovePhoto(insp, "p"), domain.ErrLocked)
	assert.ErrorIs(t, checklist.SetCustomValue(insp, "cf", "v"), domain.ErrLocked)
}

// ── Custom values ─────────────────────────────────────────────────────────────

func TestSetCustomValue(t *testing.T) {
	tpl := &entity.Template{
		ID: "tpl-4", Title: "Con campos",
		Structure:    []entity.Section{},
		CustomFields: []entity.CustomField{{ID: "cf-1", Label: "Kilometraje", Type: entity.FieldNumber}},
	}
	insp, err := checklist.NewDraft("i", tpl, "c", "w", "u", time.Now())
	require.NoError(t, err)

	require.NoError(t, checklist.SetCustomValue(insp, "cf-1", "45210"))
	assert.Equal(t, "45210", insp.CustomValues["cf-1"])

	assert.ErrorIs(t, checklist.SetCustomValue(insp, "cf-x", "1"), domain.ErrNotFound,
		"un campo que no existía en el snapshot se rechaza")
}
