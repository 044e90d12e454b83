package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

var _ repository.InspectionRepository = (*InspectionRepo)(nil)

// InspectionRepo implementación del puerto InspectionRepository sobre
// PostgreSQL. El checklist, los valores de cabecera y las fotos viajan como
// JSONB: la inspección es un documento que se lee y escribe completo.
type InspectionRepo struct {
	pool *pgxpool.Pool
}

// NewInspectionRepository construye el adaptador de persistencia para inspecciones.
func NewInspectionRepository(pool *pgxpool.Pool) *InspectionRepo {
	return &InspectionRepo{pool: pool}
}

const inspectionColumns = `id, company_id, worker_id, template_id, user_id, title, status,
		checklist_data, custom_values, score, signature, photos, signed_at, created_at, updated_at`

// Create persiste una inspección recién creada (con su snapshot del checklist).
func (r *InspectionRepo) Create(ctx context.Context, inspection *entity.Inspection) error {
	checklist, customValues, photos, err := marshalInspectionDocs(inspection)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO inspections (` + inspectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.pool.Exec(ctx, query,
		inspection.ID, inspection.CompanyID, inspection.WorkerID, inspection.TemplateID,
		inspection.UserID, inspection.Title, inspection.Status,
		checklist, customValues, inspection.Score, inspection.Signature, photos,
		inspection.SignedAt, inspection.CreatedAt, inspection.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert inspection: %w", err)
	}
	return nil
}

// GetByID obtiene una inspección por ID. Devuelve (nil, nil) si no existe.
func (r *InspectionRepo) GetByID(ctx context.Context, id string) (*entity.Inspection, error) {
	query := `SELECT ` + inspectionColumns + ` FROM inspections WHERE id = $1`
	var (
		i            entity.Inspection
		checklist    []byte
		customValues []byte
		photos       []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.CompanyID, &i.WorkerID, &i.TemplateID, &i.UserID, &i.Title, &i.Status,
		&checklist, &customValues, &i.Score, &i.Signature, &photos,
		&i.SignedAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection: %w", err)
	}
	if err := unmarshalInspectionDocs(&i, checklist, customValues, photos); err != nil {
		return nil, err
	}
	return &i, nil
}

// GetDetail obtiene la inspección junto con la empresa, el trabajador y la
// plantilla relacionados, en una sola consulta (lo necesitan la vista de
// ejecución y el PDF).
func (r *InspectionRepo) GetDetail(ctx context.Context, id string) (*repository.InspectionDetail, error) {
	query := `
		SELECT i.id, i.company_id, i.worker_id, i.template_id, i.user_id, i.title, i.status,
		       i.checklist_data, i.custom_values, i.score, i.signature, i.photos,
		       i.signed_at, i.created_at, i.updated_at,
		       c.id, c.rut, c.name, c.address, c.phone, c.industry, c.status, c.logo_url, c.created_at, c.updated_at,
		       w.id, w.name, w.email, w.role, w.rut, w.phone, w.company_id,
		       w.sec_registration_number, w.digital_signature, w.created_at, w.updated_at,
		       t.id, t.title, t.description, t.structure, t.custom_fields, t.created_at, t.updated_at
		FROM inspections i
		JOIN companies c ON c.id = i.company_id
		JOIN workers   w ON w.id = i.worker_id
		JOIN templates t ON t.id = i.template_id
		WHERE i.id = $1`

	var (
		d            repository.InspectionDetail
		checklist    []byte
		customValues []byte
		photos       []byte
		structure    []byte
		customFields []byte
	)
	i, c, w, t := &d.Inspection, &d.Company, &d.Worker, &d.Template
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.CompanyID, &i.WorkerID, &i.TemplateID, &i.UserID, &i.Title, &i.Status,
		&checklist, &customValues, &i.Score, &i.Signature, &photos,
		&i.SignedAt, &i.CreatedAt, &i.UpdatedAt,
		&c.ID, &c.RUT, &c.Name, &c.Address, &c.Phone, &c.Industry, &c.Status,
		&c.LogoURL, &c.CreatedAt, &c.UpdatedAt,
		&w.ID, &w.Name, &w.Email, &w.Role, &w.RUT, &w.Phone, &w.CompanyID,
		&w.SECRegistrationNumber, &w.DigitalSignature, &w.CreatedAt, &w.UpdatedAt,
		&t.ID, &t.Title, &t.Description, &structure, &customFields, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection detail: %w", err)
	}
	if err := unmarshalInspectionDocs(i, checklist, customValues, photos); err != nil {
		return nil, err
	}
	if err := unmarshalTemplateDocs(t, structure, customFields); err != nil {
		return nil, err
	}
	return &d, nil
}

// Update reemplaza el registro completo en una sola escritura (last-writer-wins).
func (r *InspectionRepo) Update(ctx context.Context, inspection *entity.Inspection) error {
	checklist, customValues, photos, err := marshalInspectionDocs(inspection)
	if err != nil {
		return err
	}
	query := `
		UPDATE inspections
		SET title = $2, status = $3, checklist_data = $4, custom_values = $5,
		    score = $6, signature = $7, photos = $8, signed_at = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		inspection.ID, inspection.Title, inspection.Status,
		checklist, customValues, inspection.Score, inspection.Signature, photos,
		inspection.SignedAt, inspection.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inspection: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el listado paginado con los nombres relacionados ya resueltos
// y el total para el envelope de paginación. No carga los documentos JSONB:
// la fila del listado solo necesita cabecera, estado y puntaje.
func (r *InspectionRepo) List(ctx context.Context, limit, offset int) ([]repository.InspectionSummary, int, error) {
	query := `
		SELECT i.id, i.company_id, i.worker_id, i.template_id, i.user_id, i.title, i.status,
		       i.score, i.signed_at, i.created_at, i.updated_at,
		       c.name, w.name, t.title
		FROM inspections i
		JOIN companies c ON c.id = i.company_id
		JOIN workers   w ON w.id = i.worker_id
		JOIN templates t ON t.id = i.template_id
		ORDER BY i.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list inspections: %w", err)
	}
	defer rows.Close()

	var list []repository.InspectionSummary
	for rows.Next() {
		var row repository.InspectionSummary
		i := &row.Inspection
		if err := rows.Scan(
			&i.ID, &i.CompanyID, &i.WorkerID, &i.TemplateID, &i.UserID, &i.Title, &i.Status,
			&i.Score, &i.SignedAt, &i.CreatedAt, &i.UpdatedAt,
			&row.CompanyName, &row.WorkerName, &row.TemplateTitle,
		); err != nil {
			return nil, 0, fmt.Errorf("scan inspection: %w", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inspections`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inspections: %w", err)
	}
	return list, total, nil
}

func marshalInspectionDocs(i *entity.Inspection) (checklist, customValues, photos []byte, err error) {
	if checklist, err = json.Marshal(i.ChecklistData); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal checklist: %w", err)
	}
	if customValues, err = json.Marshal(i.CustomValues); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal custom values: %w", err)
	}
	if i.Photos == nil {
		i.Photos = []entity.Photo{}
	}
	if photos, err = json.Marshal(i.Photos); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal photos: %w", err)
	}
	return checklist, customValues, photos, nil
}

func unmarshalInspectionDocs(i *entity.Inspection, checklist, customValues, photos []byte) error {
	if err := json.Unmarshal(checklist, &i.ChecklistData); err != nil {
		return fmt.Errorf("unmarshal checklist: %w", err)
	}
	if err := json.Unmarshal(customValues, &i.CustomValues); err != nil {
		return fmt.Errorf("unmarshal custom values: %w", err)
	}
	if err := json.Unmarshal(photos, &i.Photos); err != nil {
		return fmt.Errorf("unmarshal photos: %w", err)
	}
	return nil
}
