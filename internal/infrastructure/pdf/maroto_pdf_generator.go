// Package pdf implementa la generación del informe PDF de una inspección de
// seguridad cerrada, para entrega al cliente y respaldo de fiscalización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título inspección │ Fecha + Puntaje %              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Razón social + RUT + dirección                    │
//	│  INSPECTOR: Nombre + RUT + N° registro SEC                  │
//	│  CAMPOS: grilla de campos personalizados de cabecera        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CHECKLIST: por sección → Ítem | Resultado | Observación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMA: sello del inspector + fecha de firma                │
//	│  ANEXO: evidencia fotográfica                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinspection "github.com/prevenapp/inspecciones-api/internal/application/inspection"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 95, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorBad     = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ appinspection.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa inspection.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReport genera el PDF del informe y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReport(_ context.Context, detail *repository.InspectionDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Inspección", true).
		WithAuthor(detail.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	insp := &detail.Inspection

	// Cabecera
	m.AddRows(headerRow(insp))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(&detail.Company))
	m.AddRows(inspectorRow(&detail.Worker))
	for _, r := range customFieldRows(insp, detail.Template.CustomFields) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Checklist por sección
	for _, section := range insp.ChecklistData {
		m.AddRows(sectionTitleRow(section.Title))
		m.AddRows(checklistHeaderRow())
		for _, item := range section.Items {
			m.AddRows(checklistItemRow(item))
		}
	}

	// Firma
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range signatureRows(insp, &detail.Worker) {
		m.AddRows(r)
	}

	// Anexo fotográfico
	if len(insp.Photos) > 0 {
		for _, r := range photoAnnexRows(insp.Photos) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título de la inspección (izq) y fecha + puntaje (der).
func headerRow(insp *entity.Inspection) core.Row {
	fecha := insp.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(insp.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("INFORME DE INSPECCIÓN DE SEGURIDAD", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Cumplimiento: %d%%", insp.Score), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
				Color: colorPrimary,
			}),
			text.New("Estado: COMPLETADA", props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// companyRow: datos de la empresa inspeccionada.
func companyRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EMPRESA INSPECCIONADA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   RUT: %s   |   %s",
				company.Name,
				company.RUT,
				nonEmpty(company.Address, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// inspectorRow: datos del prevencionista que ejecutó la inspección.
func inspectorRow(worker *entity.Worker) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("INSPECTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   RUT: %s   |   Registro SEC: %s",
				worker.Name,
				nonEmpty(worker.RUT, "—"),
				nonEmpty(worker.SECRegistrationNumber, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// customFieldRows: grilla de campos personalizados de cabecera, dos por fila.
func customFieldRows(insp *entity.Inspection, fields []entity.CustomField) []core.Row {
	if len(fields) == 0 {
		return nil
	}
	cell := func(f entity.CustomField) core.Col {
		return col.New(6).Add(
			text.New(f.Label+":", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New(nonEmpty(insp.CustomValues[f.ID], "—"), props.Text{
				Size: 8, Top: 1, Left: 30, Color: colorGray,
			}),
		)
	}

	var rows []core.Row
	for i := 0; i < len(fields); i += 2 {
		r := row.New(6)
		if i+1 < len(fields) {
			r.Add(cell(fields[i]), cell(fields[i+1]))
		} else {
			r.Add(cell(fields[i]), col.New(6))
		}
		rows = append(rows, r)
	}
	return rows
}

// sectionTitleRow: título de una sección del checklist.
func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		}),
	))
}

// checklistHeaderRow: cabecera de la tabla de ítems.
func checklistHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Ítem", 7, align.Left),
		h("Resultado", 2, align.Center),
		h("Observación", 3, align.Left),
	)
}

// checklistItemRow: una fila por ítem. Las respuestas TEXT van en la columna
// de observación; el resto (B/M/N-A, SÍ/NO) en la de resultado. Las
// respuestas "M" (Malo) se destacan en rojo.
func checklistItemRow(item entity.QuestionItem) core.Row {
	result, observation := renderAnswer(item)
	resultColor := colorPrimary
	if result == "M" || result == "NO" {
		resultColor = colorBad
	}
	return row.New(6).Add(
		col.New(7).Add(text.New(item.Text, props.Text{
			Size: 8, Align: align.Left, Top: 1,
		})),
		col.New(2).Add(text.New(result, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
			Color: resultColor,
		})),
		col.New(3).Add(text.New(observation, props.Text{
			Size: 7.5, Align: align.Left, Top: 1, Color: colorGray,
		})),
	)
}

// signatureRows: sello del inspector con su firma digital reutilizable.
func signatureRows(insp *entity.Inspection, worker *entity.Worker) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("FIRMA DEL INSPECTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	signedAt := "—"
	if insp.SignedAt != nil {
		signedAt = insp.SignedAt.Format("02/01/2006 15:04")
	}

	sigCol := col.New(4)
	if raw, ext, ok := decodeDataURL(insp.Signature); ok {
		sigCol.Add(image.NewFromBytes(raw, ext, props.Rect{Percent: 90, Center: true}))
	} else {
		sigCol.Add(text.New("(firma registrada electrónicamente)", props.Text{
			Size: 7.5, Color: colorGray, Top: 8, Align: align.Center,
		}))
	}

	rows = append(rows, row.New(28).Add(
		sigCol,
		col.New(8).Add(
			text.New(worker.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4, Left: 3,
			}),
			text.New("RUT: "+nonEmpty(worker.RUT, "—"), props.Text{
				Size: 8, Top: 11, Left: 3, Color: colorGray,
			}),
			text.New("Registro SEC: "+nonEmpty(worker.SECRegistrationNumber, "—"), props.Text{
				Size: 8, Top: 16, Left: 3, Color: colorGray,
			}),
			text.New("Firmado el: "+signedAt, props.Text{
				Size: 8, Top: 21, Left: 3, Color: colorGray,
			}),
		),
	))
	return rows
}

// photoAnnexRows: evidencia fotográfica, dos fotos por fila.
func photoAnnexRows(photos []entity.Photo) []core.Row {
	rows := []core.Row{
		row.New(9).Add(col.New(12).Add(
			text.New("ANEXO: EVIDENCIA FOTOGRÁFICA", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
			}),
		)),
	}

	photoCol := func(p entity.Photo) core.Col {
		c := col.New(6)
		if raw, ext, ok := decodeDataURL(p.URL); ok {
			c.Add(image.NewFromBytes(raw, ext, props.Rect{Percent: 90, Center: true}))
		} else {
			c.Add(text.New("(foto no disponible)", props.Text{
				Size: 7.5, Color: colorGray, Top: 20, Align: align.Center,
			}))
		}
		return c
	}

	for i := 0; i < len(photos); i += 2 {
		r := row.New(55)
		if i+1 < len(photos) {
			r.Add(photoCol(photos[i]), photoCol(photos[i+1]))
		} else {
			r.Add(photoCol(photos[i]), col.New(6))
		}
		rows = append(rows, r)

		caption := func(p entity.Photo) core.Col {
			return col.New(6).Add(text.New(
				p.Timestamp.Format("02/01/2006 15:04"),
				props.Text{Size: 7, Align: align.Center, Color: colorGray},
			))
		}
		cr := row.New(5)
		if i+1 < len(photos) {
			cr.Add(caption(photos[i]), caption(photos[i+1]))
		} else {
			cr.Add(caption(photos[i]), col.New(6))
		}
		rows = append(rows, cr)
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// renderAnswer separa la respuesta de un ítem en su columna de resultado y su
// columna de observación según el tipo de pregunta.
func renderAnswer(item entity.QuestionItem) (result, observation string) {
	if item.Answer == nil || *item.Answer == "" {
		return "—", ""
	}
	answer := *item.Answer
	switch item.Type {
	case entity.QuestionText:
		return "✓", answer
	case entity.QuestionPhoto, entity.QuestionSignature:
		return "✓", ""
	default:
		return answer, ""
	}
}

// decodeDataURL decodifica un data URL de imagen ("data:image/png;base64,...")
// y devuelve los bytes con su extensión Maroto.
func decodeDataURL(dataURL string) ([]byte, extension.Type, bool) {
	const prefix = "data:image/"
	if !strings.HasPrefix(dataURL, prefix) {
		return nil, "", false
	}
	rest := strings.TrimPrefix(dataURL, prefix)
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return nil, "", false
	}

	var ext extension.Type
	switch rest[:sep] {
	case "png":
		ext = extension.Png
	case "jpeg", "jpg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}

	raw, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return nil, "", false
	}
	return raw, ext, true
}
