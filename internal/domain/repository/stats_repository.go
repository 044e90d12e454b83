package repository

import "context"

// StatsRepository agrupa las consultas agregadas read-only del dashboard.
// Cada conteo es independiente; el caso de uso las lanza en paralelo.
type StatsRepository interface {
	CountActiveCompanies(ctx context.Context) (int, error)
	CountWorkers(ctx context.Context) (int, error)
	CountInspections(ctx context.Context) (int, error)
	CountCompletedInspections(ctx context.Context) (int, error)
}
