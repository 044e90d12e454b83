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

func strptr(s string) *string { return &s }

func buildTemplate() *entity.Template {
	return &entity.Template{
		ID:    "tpl-1",
		Title: "Checklist Extintores",
		Structure: []entity.Section{
			{
				ID:    "sec-1",
				Title: "Estado general",
				Items: []entity.QuestionItem{
					{ID: "item-1", Text: "Manómetro en zona verde", Type: entity.QuestionRatingABC},
				},
			},
		},
		CustomFields: []entity.CustomField{
			{ID: "cf-1", Label: "Kilometraje", Type: entity.FieldNumber, Required: true},
		},
	}
}

func newDraft(t *testing.T, tpl *entity.Template) *entity.Inspection {
	t.Helper()
	insp, err := checklist.NewDraft("insp-1", tpl, "comp-1", "work-1", "user-1", time.Now())
	require.NoError(t, err)
	return insp
}

func TestNewDraft_CopiaEstadoInicial(t *testing.T) {
	tpl := buildTemplate()
	insp := newDraft(t, tpl)

	assert.Equal(t, entity.InspectionDraft, insp.Status)
	assert.Equal(t, 0, insp.Score)
	assert.Equal(t, tpl.Title, insp.Title, "el título se copia de la plantilla")
	assert.Equal(t, "tpl-1", insp.TemplateID)
	require.Len(t, insp.ChecklistData, 1)
	assert.Equal(t, "sec-1", insp.ChecklistData[0].ID)
	// CustomValues se siembra con las claves del esquema, sin valores.
	assert.Equal(t, map[string]string{"cf-1": ""}, insp.CustomValues)
}

func TestNewDraft_IdsFaltantes(t *testing.T) {
	tpl := buildTemplate()
	_, err := checklist.NewDraft("i", tpl, "", "work-1", "user-1", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "companyID vacío debe rechazarse")

	_, err = checklist.NewDraft("i", tpl, "comp-1", "", "user-1", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "workerID vacío debe rechazarse")

	_, err = checklist.NewDraft("i", nil, "comp-1", "work-1", "user-1", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "plantilla nil debe rechazarse")
}

// Invariante central del sistema: el snapshot es una copia profunda e
// independiente. Mutar la plantilla después de crear la inspección no puede
// tener ningún efecto observable sobre el checklist ya copiado.
func TestSnapshot_IndependienteDeLaPlantilla(t *testing.T) {
	tpl := buildTemplate()
	insp := newDraft(t, tpl)

	// Mutaciones agresivas sobre la fuente: nueva sección, ítem nuevo,
	// texto cambiado y respuesta pre-cargada.
	tpl.Structure = append(tpl.Structure, entity.Section{ID: "sec-2", Title: "Nueva sección"})
	tpl.Structure[0].Title = "Título cambiado"
	tpl.Structure[0].Items[0].Text = "Texto cambiado"
	tpl.Structure[0].Items[0].Answer = strptr("B")
	tpl.Structure[0].Items = append(tpl.Structure[0].Items, entity.QuestionItem{ID: "item-x", Type: entity.QuestionYesNo})
	tpl.CustomFields = append(tpl.CustomFields, entity.CustomField{ID: "cf-2", Label: "Patente"})

	require.Len(t, insp.ChecklistData, 1, "la inspección conserva exactamente 1 sección")
	sec := insp.ChecklistData[0]
	assert.Equal(t, "Estado general", sec.Title)
	require.Len(t, sec.Items, 1)
	assert.Equal(t, "Manómetro en zona verde", sec.Items[0].Text)
	assert.Nil(t, sec.Items[0].Answer, "la respuesta pre-cargada en la plantilla no alcanza al snapshot")
	assert.Equal(t, map[string]string{"cf-1": ""}, insp.CustomValues)
}

// Dirección inversa: responder la inspección no ensucia la plantilla.
func TestSnapshot_ResponderNoAlteraLaPlantilla(t *testing.T) {
	tpl := buildTemplate()
	insp := newDraft(t, tpl)

	require.NoError(t, checklist.SetAnswer(insp, "sec-1", "item-1", strptr("M")))

	assert.Nil(t, tpl.Structure[0].Items[0].Answer, "la plantilla queda intacta")
}

func TestSnapshotStructure_ClonaPunterosDeRespuesta(t *testing.T) {
	src := []entity.Section{{
		ID: "s", Items: []entity.QuestionItem{{ID: "i", Type: entity.QuestionYesNo, Answer: strptr("SI")}},
	}}
	dst := checklist.SnapshotStructure(src)

	*src[0].Items[0].Answer = "NO"
	assert.Equal(t, "SI", *dst[0].Items[0].Answer, "los punteros Answer no se comparten")
}
