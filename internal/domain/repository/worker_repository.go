package repository

import (
	"context"

	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
)

// WorkerRepository define el puerto de persistencia para Worker (DIP).
type WorkerRepository interface {
	Create(ctx context.Context, worker *entity.Worker) error
	GetByID(ctx context.Context, id string) (*entity.Worker, error)
	GetByEmail(ctx context.Context, email string) (*entity.Worker, error)
	Update(ctx context.Context, worker *entity.Worker) error
	Delete(ctx context.Context, id string) error
	// Search filtra por nombre o email (insensible a mayúsculas y acentos)
	// y devuelve también el total para la paginación.
	Search(ctx context.Context, search string, limit, offset int) ([]*entity.Worker, int, error)
}
