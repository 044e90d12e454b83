package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevenapp/inspecciones-api/internal/application/usecase"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
)

// fakeStatsRepo conteos fijos para el panel.
type fakeStatsRepo struct {
	companies, workers, inspections, completed int
}

func (f *fakeStatsRepo) CountActiveCompanies(_ context.Context) (int, error) { return f.companies, nil }
func (f *fakeStatsRepo) CountWorkers(_ context.Context) (int, error)        { return f.workers, nil }
func (f *fakeStatsRepo) CountInspections(_ context.Context) (int, error)    { return f.inspections, nil }
func (f *fakeStatsRepo) CountCompletedInspections(_ context.Context) (int, error) {
	return f.completed, nil
}

func TestDashboard_CalculaTasaDeCompletitud(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeStatsRepo{
		companies: 5, workers: 40, inspections: 8, completed: 6,
	})

	out, err := uc.GetStats(context.Background(), userActor)

	require.NoError(t, err)
	assert.Equal(t, 5, out.Companies)
	assert.Equal(t, 40, out.Workers)
	assert.Equal(t, 8, out.Inspections)
	assert.Equal(t, 75, out.CompletionRate, "6 de 8 completadas = 75%")
}

func TestDashboard_SinInspecciones_TasaCero(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeStatsRepo{companies: 1})

	out, err := uc.GetStats(context.Background(), userActor)

	require.NoError(t, err)
	assert.Equal(t, 0, out.CompletionRate, "sin inspecciones la tasa es 0, no una división por cero")
}

func TestDashboard_AnonimoNoAutorizado(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeStatsRepo{})

	_, err := uc.GetStats(context.Background(), policy.Actor{})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
