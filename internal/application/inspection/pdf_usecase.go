package inspection

import (
	"context"
	"fmt"

	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// PDFUseCase genera el informe PDF de una inspección. Solo se emite para
// inspecciones COMPLETED: el informe es el artefacto legal del cierre firmado.
type PDFUseCase struct {
	inspectionRepo repository.InspectionRepository
	generator      ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando el generador.
func NewPDFUseCase(inspectionRepo repository.InspectionRepository, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{inspectionRepo: inspectionRepo, generator: generator}
}

// DownloadReport recupera la inspección con sus relaciones y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la inspección no existe.
//   - domain.ErrInvalidInput     si la inspección sigue en DRAFT.
func (uc *PDFUseCase) DownloadReport(ctx context.Context, actor policy.Actor, inspectionID string) (pdfBytes []byte, filename string, err error) {
	if !policy.Can(actor, policy.ActionRead, policy.ResourceInspection) {
		return nil, "", domain.ErrForbidden
	}
	detail, err := uc.inspectionRepo.GetDetail(ctx, inspectionID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener inspección: %w", err)
	}
	if detail == nil {
		return nil, "", domain.ErrNotFound
	}
	if detail.Inspection.Status != entity.InspectionCompleted {
		return nil, "", fmt.Errorf("%w: la inspección está en borrador, debe firmarse antes de emitir el informe",
			domain.ErrInvalidInput)
	}

	pdfBytes, err = uc.generator.GenerateReport(ctx, detail)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar informe: %w", err)
	}
	filename = fmt.Sprintf("inspeccion-%s.pdf", detail.Inspection.ID)
	return pdfBytes, filename, nil
}
