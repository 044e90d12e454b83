package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
	"github.com/prevenapp/inspecciones-api/pkg/normalize"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación del puerto WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	pool *pgxpool.Pool
}

// NewWorkerRepository construye el adaptador de persistencia para trabajadores.
func NewWorkerRepository(pool *pgxpool.Pool) *WorkerRepo {
	return &WorkerRepo{pool: pool}
}

const workerColumns = `id, name, email, role, rut, phone, company_id, sec_registration_number, digital_signature, created_at, updated_at`

func scanWorker(row pgxRow) (*entity.Worker, error) {
	var w entity.Worker
	err := row.Scan(
		&w.ID, &w.Name, &w.Email, &w.Role, &w.RUT, &w.Phone, &w.CompanyID,
		&w.SECRegistrationNumber, &w.DigitalSignature, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste un nuevo trabajador. El índice único del email se mapea a
// ErrEmailAlreadyExists.
func (r *WorkerRepo) Create(ctx context.Context, worker *entity.Worker) error {
	query := `
		INSERT INTO workers (` + workerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		worker.ID, worker.Name, worker.Email, worker.Role, worker.RUT, worker.Phone,
		worker.CompanyID, worker.SECRegistrationNumber, worker.DigitalSignature,
		worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID. Devuelve (nil, nil) si no existe.
func (r *WorkerRepo) GetByID(ctx context.Context, id string) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`
	w, err := scanWorker(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return w, nil
}

// GetByEmail obtiene un trabajador por email.
func (r *WorkerRepo) GetByEmail(ctx context.Context, email string) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE lower(email) = lower($1)`
	w, err := scanWorker(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker by email: %w", err)
	}
	return w, nil
}

// Update actualiza un trabajador existente.
func (r *WorkerRepo) Update(ctx context.Context, worker *entity.Worker) error {
	query := `
		UPDATE workers
		SET name = $2, email = $3, role = $4, rut = $5, phone = $6, company_id = $7,
		    sec_registration_number = $8, digital_signature = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		worker.ID, worker.Name, worker.Email, worker.Role, worker.RUT, worker.Phone,
		worker.CompanyID, worker.SECRegistrationNumber, worker.DigitalSignature, worker.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update worker: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un trabajador. Su historial de inspecciones lo bloquea
// vía FK RESTRICT.
func (r *WorkerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}

// Search filtra por nombre o email, insensible a mayúsculas y acentos.
// El término se normaliza en Go y los valores almacenados con unaccent()
// (extensión habilitada en las migraciones). Devuelve también el total
// para el envelope de paginación.
func (r *WorkerRepo) Search(ctx context.Context, search string, limit, offset int) ([]*entity.Worker, int, error) {
	term := normalize.Search(search)
	where := ``
	args := []any{limit, offset}
	if term != "" {
		where = `WHERE unaccent(lower(name)) LIKE '%' || $3 || '%' OR unaccent(lower(email)) LIKE '%' || $3 || '%'`
		args = append(args, term)
	}

	query := fmt.Sprintf(`SELECT `+workerColumns+`, COUNT(*) OVER()
		FROM workers %s ORDER BY created_at DESC LIMIT $1 OFFSET $2`, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search workers: %w", err)
	}
	defer rows.Close()

	var (
		workers []*entity.Worker
		total   int
	)
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Email, &w.Role, &w.RUT, &w.Phone, &w.CompanyID,
			&w.SECRegistrationNumber, &w.DigitalSignature, &w.CreatedAt, &w.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan worker: %w", err)
		}
		workers = append(workers, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// COUNT(*) OVER() no entrega filas si la página quedó fuera de rango;
	// en ese caso se consulta el total por separado.
	if len(workers) == 0 {
		countQuery := `SELECT COUNT(*) FROM workers`
		countArgs := []any{}
		if term != "" {
			countQuery += ` WHERE unaccent(lower(name)) LIKE '%' || $1 || '%' OR unaccent(lower(email)) LIKE '%' || $1 || '%'`
			countArgs = append(countArgs, term)
		}
		if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count workers: %w", err)
		}
	}
	return workers, total, nil
}
