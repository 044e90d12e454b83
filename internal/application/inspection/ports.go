package inspection

import (
	"context"

	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// ReportPDFGenerator genera el informe PDF de una inspección cerrada.
// La implementación (Maroto) vive en infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateReport(ctx context.Context, detail *repository.InspectionDetail) ([]byte, error)
}
