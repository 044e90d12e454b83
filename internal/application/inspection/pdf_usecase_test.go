package inspection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevenapp/inspecciones-api/internal/application/inspection"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

type fakePDFGenerator struct {
	called bool
}

func (f *fakePDFGenerator) GenerateReport(_ context.Context, _ *repository.InspectionDetail) ([]byte, error) {
	f.called = true
	return []byte("%PDF-1.7 fake"), nil
}

func TestDownloadReport_SoloCompletadas(t *testing.T) {
	repo := &fakeInspectionRepo{inspections: map[string]*entity.Inspection{
		"borrador": {ID: "borrador", Status: entity.InspectionDraft},
	}}
	gen := &fakePDFGenerator{}
	uc := inspection.NewPDFUseCase(repo, gen)

	_, _, err := uc.DownloadReport(context.Background(), actor, "borrador")

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una inspección en borrador no emite informe")
	assert.False(t, gen.called)
}

func TestDownloadReport_GeneraConNombre(t *testing.T) {
	repo := &fakeInspectionRepo{inspections: map[string]*entity.Inspection{
		"done-1": {ID: "done-1", Status: entity.InspectionCompleted},
	}}
	gen := &fakePDFGenerator{}
	uc := inspection.NewPDFUseCase(repo, gen)

	pdfBytes, filename, err := uc.DownloadReport(context.Background(), actor, "done-1")

	require.NoError(t, err)
	assert.True(t, gen.called)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "inspeccion-done-1.pdf", filename)
}

func TestDownloadReport_NoExiste_NotFound(t *testing.T) {
	repo := &fakeInspectionRepo{inspections: map[string]*entity.Inspection{}}
	uc := inspection.NewPDFUseCase(repo, &fakePDFGenerator{})

	_, _, err := uc.DownloadReport(context.Background(), actor, "fantasma")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDownloadReport_AnonimoForbidden(t *testing.T) {
	repo := &fakeInspectionRepo{inspections: map[string]*entity.Inspection{}}
	uc := inspection.NewPDFUseCase(repo, &fakePDFGenerator{})

	_, _, err := uc.DownloadReport(context.Background(), policy.Actor{}, "x")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
