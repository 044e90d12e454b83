package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa. Mapea el índice único del RUT a ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, rut, name, address, phone, industry, status, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.RUT, company.Name, company.Address,
		company.Phone, company.Industry, company.Status, company.LogoURL,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.getBy(ctx, "id", id)
}

// GetByRUT obtiene una empresa por RUT (formateado).
func (r *CompanyRepo) GetByRUT(ctx context.Context, rutValue string) (*entity.Company, error) {
	return r.getBy(ctx, "rut", rutValue)
}

func (r *CompanyRepo) getBy(ctx context.Context, column, value string) (*entity.Company, error) {
	query := fmt.Sprintf(`
		SELECT id, rut, name, address, phone, industry, status, logo_url, created_at, updated_at
		FROM companies WHERE %s = $1`, column)
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&c.ID, &c.RUT, &c.Name, &c.Address, &c.Phone, &c.Industry, &c.Status,
		&c.LogoURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies
		SET rut = $2, name = $3, address = $4, phone = $5, industry = $6, status = $7, logo_url = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		company.ID, company.RUT, company.Name, company.Address,
		company.Phone, company.Industry, company.Status, company.LogoURL, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve empresas con sus conteos de trabajadores e inspecciones,
// las más nuevas primero, junto con el total para la paginación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]repository.CompanyWithCounts, int, error) {
	query := `
		SELECT c.id, c.rut, c.name, c.address, c.phone, c.industry, c.status, c.logo_url, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM workers w WHERE w.company_id = c.id),
		       (SELECT COUNT(*) FROM inspections i WHERE i.company_id = c.id),
		       COUNT(*) OVER()
		FROM companies c
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var (
		list  []repository.CompanyWithCounts
		total int
	)
	for rows.Next() {
		var row repository.CompanyWithCounts
		c := &row.Company
		if err := rows.Scan(
			&c.ID, &c.RUT, &c.Name, &c.Address, &c.Phone, &c.Industry, &c.Status,
			&c.LogoURL, &c.CreatedAt, &c.UpdatedAt,
			&row.WorkerCount, &row.InspectionCount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// COUNT(*) OVER() no entrega filas si la página quedó fuera de rango;
	// en ese caso se consulta el total por separado.
	if len(list) == 0 {
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count companies: %w", err)
		}
	}
	return list, total, nil
}

// Delete elimina una empresa sin dependientes. El conteo de trabajadores se
// verifica aquí (company_id de workers admite vacío y no lleva FK); las
// inspecciones quedan además protegidas por su FK RESTRICT.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	var dependents int
	err := r.pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM workers w WHERE w.company_id = $1)
		     + (SELECT COUNT(*) FROM inspections i WHERE i.company_id = $1)`, id,
	).Scan(&dependents)
	if err != nil {
		return fmt.Errorf("count company dependents: %w", err)
	}
	if dependents > 0 {
		return domain.ErrHasDependents
	}

	_, err = r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
