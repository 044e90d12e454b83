package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas read-only para el dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas del dashboard.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountActiveCompanies cuenta las empresas con estado ACTIVE.
func (r *StatsRepo) CountActiveCompanies(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM companies WHERE status = $1`, entity.CompanyActive)
}

// CountWorkers cuenta todos los trabajadores registrados.
func (r *StatsRepo) CountWorkers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM workers`)
}

// CountInspections cuenta todas las inspecciones.
func (r *StatsRepo) CountInspections(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM inspections`)
}

// CountCompletedInspections cuenta las inspecciones firmadas y cerradas.
func (r *StatsRepo) CountCompletedInspections(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM inspections WHERE status = $1`, entity.InspectionCompleted)
}

func (r *StatsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats count: %w", err)
	}
	return n, nil
}
