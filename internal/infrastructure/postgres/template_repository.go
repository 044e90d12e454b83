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

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación del puerto TemplateRepository sobre PostgreSQL.
// La estructura de secciones y los campos personalizados se guardan como
// documentos JSONB: el checklist es un árbol que se lee y escribe completo.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository construye el adaptador de persistencia para plantillas.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

// Create persiste una nueva plantilla.
func (r *TemplateRepo) Create(ctx context.Context, template *entity.Template) error {
	structure, customFields, err := marshalTemplateDocs(template)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO templates (id, title, description, structure, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		template.ID, template.Title, template.Description,
		structure, customFields, template.CreatedAt, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID. Devuelve (nil, nil) si no existe.
func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	query := `
		SELECT id, title, description, structure, custom_fields, created_at, updated_at
		FROM templates WHERE id = $1`
	var (
		t            entity.Template
		structure    []byte
		customFields []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &structure, &customFields, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	if err := unmarshalTemplateDocs(&t, structure, customFields); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update actualiza una plantilla existente, incluida su estructura completa.
// Las inspecciones ya creadas no se ven afectadas: trabajan sobre su propia
// copia del checklist.
func (r *TemplateRepo) Update(ctx context.Context, template *entity.Template) error {
	structure, customFields, err := marshalTemplateDocs(template)
	if err != nil {
		return err
	}
	query := `
		UPDATE templates
		SET title = $2, description = $3, structure = $4, custom_fields = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		template.ID, template.Title, template.Description,
		structure, customFields, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las plantillas con su conteo de uso, las más nuevas primero.
func (r *TemplateRepo) List(ctx context.Context) ([]repository.TemplateWithUsage, error) {
	query := `
		SELECT t.id, t.title, t.description, t.structure, t.custom_fields, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM inspections i WHERE i.template_id = t.id)
		FROM templates t
		ORDER BY t.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var list []repository.TemplateWithUsage
	for rows.Next() {
		var (
			row          repository.TemplateWithUsage
			structure    []byte
			customFields []byte
		)
		t := &row.Template
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &structure, &customFields,
			&t.CreatedAt, &t.UpdatedAt, &row.InspectionCount,
		); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		if err := unmarshalTemplateDocs(t, structure, customFields); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountInspections cuenta cuántas inspecciones referencian la plantilla.
func (r *TemplateRepo) CountInspections(ctx context.Context, templateID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inspections WHERE template_id = $1`, templateID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count template inspections: %w", err)
	}
	return count, nil
}

// Delete elimina una plantilla sin uso. La FK RESTRICT desde inspections
// es la segunda línea de defensa del guard del caso de uso.
func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

func marshalTemplateDocs(t *entity.Template) (structure, customFields []byte, err error) {
	if structure, err = json.Marshal(t.Structure); err != nil {
		return nil, nil, fmt.Errorf("marshal structure: %w", err)
	}
	if customFields, err = json.Marshal(t.CustomFields); err != nil {
		return nil, nil, fmt.Errorf("marshal custom fields: %w", err)
	}
	return structure, customFields, nil
}

func unmarshalTemplateDocs(t *entity.Template, structure, customFields []byte) error {
	if err := json.Unmarshal(structure, &t.Structure); err != nil {
		return fmt.Errorf("unmarshal structure: %w", err)
	}
	if err := json.Unmarshal(customFields, &t.CustomFields); err != nil {
		return fmt.Errorf("unmarshal custom fields: %w", err)
	}
	return nil
}
