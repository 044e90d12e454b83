package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del panel principal.
//
// Fuente de datos: StatsRepository (consultas read-only). Los cuatro conteos
// son independientes entre sí y se lanzan en paralelo.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el resumen: empresas activas, trabajadores, inspecciones
// y la tasa de completitud (COMPLETED sobre el total, 0 si no hay ninguna).
func (uc *DashboardUseCase) GetStats(ctx context.Context, actor policy.Actor) (*dto.DashboardStatsResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}

	type countResult struct {
		n   int
		err error
	}

	companiesCh := make(chan countResult, 1)
	workersCh := make(chan countResult, 1)
	inspectionsCh := make(chan countResult, 1)
	completedCh := make(chan countResult, 1)

	go func() {
		n, err := uc.statsRepo.CountActiveCompanies(ctx)
		companiesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountWorkers(ctx)
		workersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountInspections(ctx)
		inspectionsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountCompletedInspections(ctx)
		completedCh <- countResult{n, err}
	}()

	companies := <-companiesCh
	workers := <-workersCh
	inspections := <-inspectionsCh
	completed := <-completedCh

	if companies.err != nil {
		return nil, fmt.Errorf("dashboard: empresas activas: %w", companies.err)
	}
	if workers.err != nil {
		return nil, fmt.Errorf("dashboard: trabajadores: %w", workers.err)
	}
	if inspections.err != nil {
		return nil, fmt.Errorf("dashboard: inspecciones: %w", inspections.err)
	}
	if completed.err != nil {
		return nil, fmt.Errorf("dashboard: inspecciones completadas: %w", completed.err)
	}

	rate := 0
	if inspections.n > 0 {
		rate = int(math.Round(100 * float64(completed.n) / float64(inspections.n)))
	}

	return &dto.DashboardStatsResponse{
		Companies:      companies.n,
		Workers:        workers.n,
		Inspections:    inspections.n,
		CompletionRate: rate,
	}, nil
}
