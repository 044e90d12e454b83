package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/application/usecase"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	"github.com/prevenapp/inspecciones-api/internal/domain/policy"
	"github.com/prevenapp/inspecciones-api/internal/domain/repository"
)

// fakeTemplateRepo repositorio en memoria para los tests del caso de uso.
type fakeTemplateRepo struct {
	templates   map[string]*entity.Template
	inspections map[string]int // templateID -> conteo de inspecciones
	deleted     []string
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{
		templates:   make(map[string]*entity.Template),
		inspections: make(map[string]int),
	}
}

func (f *fakeTemplateRepo) Create(_ context.Context, t *entity.Template) error {
	f.templates[t.ID] = t
	return nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id string) (*entity.Template, error) {
	return f.templates[id], nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, t *entity.Template) error {
	if _, ok := f.templates[t.ID]; !ok {
		return domain.ErrNotFound
	}
	f.templates[t.ID] = t
	return nil
}

func (f *fakeTemplateRepo) List(_ context.Context) ([]repository.TemplateWithUsage, error) {
	var out []repository.TemplateWithUsage
	for _, t := range f.templates {
		out = append(out, repository.TemplateWithUsage{Template: *t, InspectionCount: f.inspections[t.ID]})
	}
	return out, nil
}

func (f *fakeTemplateRepo) CountInspections(_ context.Context, templateID string) (int, error) {
	return f.inspections[templateID], nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id string) error {
	delete(f.templates, id)
	f.deleted = append(f.deleted, id)
	return nil
}

var (
	adminActor = policy.Actor{ID: "admin-1", Role: entity.RoleAdmin}
	userActor  = policy.Actor{ID: "user-1", Role: entity.RoleUser}
)

func seedTemplate(repo *fakeTemplateRepo, id string) {
	repo.templates[id] = &entity.Template{
		ID:    id,
		Title: "Inspección de andamios",
		Structure: []entity.Section{
			{ID: "s1", Title: "General", Items: []entity.QuestionItem{
				{ID: "i1", Text: "Plataformas completas", Type: entity.QuestionRatingABC},
			}},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestTemplateDelete_SinUso_Elimina(t *testing.T) {
	repo := newFakeTemplateRepo()
	seedTemplate(repo, "tpl-1")
	uc := usecase.NewTemplateUseCase(repo)

	err := uc.Delete(context.Background(), adminActor, "tpl-1")

	require.NoError(t, err)
	assert.Contains(t, repo.deleted, "tpl-1", "la plantilla sin uso debe eliminarse")
}

func TestTemplateDelete_ConInspecciones_Rechaza(t *testing.T) {
	repo := newFakeTemplateRepo()
	seedTemplate(repo, "tpl-1")
	repo.inspections["tpl-1"] = 1
	uc := usecase.NewTemplateUseCase(repo)

	err := uc.Delete(context.Background(), adminActor, "tpl-1")

	assert.ErrorIs(t, err, domain.ErrHasDependents,
		"una plantilla referenciada por inspecciones nunca se elimina")
	assert.Empty(t, repo.deleted)
	assert.NotNil(t, repo.templates["tpl-1"], "la plantilla debe seguir existiendo")
}

func TestTemplateDelete_NoExiste_NotFound(t *testing.T) {
	uc := usecase.NewTemplateUseCase(newFakeTemplateRepo())

	err := uc.Delete(context.Background(), adminActor, "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplateDelete_UserSinPermiso_Forbidden(t *testing.T) {
	repo := newFakeTemplateRepo()
	seedTemplate(repo, "tpl-1")
	uc := usecase.NewTemplateUseCase(repo)

	err := uc.Delete(context.Background(), userActor, "tpl-1")

	assert.ErrorIs(t, err, domain.ErrForbidden,
		"mutar plantillas requiere rol administrador")
}

func TestTemplateCreate_UserSinPermiso_Forbidden(t *testing.T) {
	uc := usecase.NewTemplateUseCase(newFakeTemplateRepo())

	_, err := uc.Create(context.Background(), userActor, dto.CreateTemplateRequest{
		Title:     "Checklist",
		Structure: []entity.Section{{ID: "s1", Title: "S"}},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTemplateUpdate_NoAfectaExistente(t *testing.T) {
	repo := newFakeTemplateRepo()
	seedTemplate(repo, "tpl-1")
	repo.inspections["tpl-1"] = 3 // con uso: editable igual, solo borrar está prohibido
	uc := usecase.NewTemplateUseCase(repo)

	out, err := uc.Update(context.Background(), adminActor, "tpl-1", dto.UpdateTemplateRequest{
		Title:     "Inspección de andamios v2",
		Structure: []entity.Section{{ID: "s1", Title: "General"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Inspección de andamios v2", out.Title)
	assert.Equal(t, 3, out.InspectionCount)
}
