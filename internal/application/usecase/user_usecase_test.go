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
)

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func seedUser(repo *fakeUserRepo, id, role string) {
	repo.users[id] = &entity.User{
		ID:        id,
		Name:      "Usuario " + id,
		Email:     id + "@prevenapp.cl",
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

var superActor = policy.Actor{ID: "super-1", Role: entity.RoleSuperAdmin}

func TestUserDelete_AutoeliminacionNegada_InclusoSuperAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "super-1", entity.RoleSuperAdmin)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), superActor, "super-1")

	assert.ErrorIs(t, err, domain.ErrSelfDelete,
		"nadie puede eliminar su propia cuenta")
	assert.NotNil(t, repo.users["super-1"], "la cuenta debe seguir existiendo")
}

func TestUserDelete_SuperAdminEliminaOtro(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "super-1", entity.RoleSuperAdmin)
	seedUser(repo, "user-2", entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), superActor, "user-2")

	require.NoError(t, err)
	assert.Nil(t, repo.users["user-2"])
}

func TestUserDelete_AdminSinPermiso_Forbidden(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-2", entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(context.Background(), adminActor, "user-2")

	assert.ErrorIs(t, err, domain.ErrForbidden,
		"la administración de usuarios es exclusiva de SUPERADMIN")
}

func TestUserCreate_SoloSuperAdmin(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	in := dto.CreateUserRequest{Name: "Nuevo", Email: "nuevo@prevenapp.cl", Password: "secreto123"}

	_, err := uc.Create(context.Background(), adminActor, in)
	assert.ErrorIs(t, err, domain.ErrForbidden, "ADMIN no crea usuarios")

	out, err := uc.Create(context.Background(), superActor, in)
	require.NoError(t, err)
	assert.Equal(t, "nuevo@prevenapp.cl", out.Email)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-2", entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), superActor, dto.CreateUserRequest{
		Name: "Clon", Email: "user-2@prevenapp.cl", Password: "secreto123",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_CambioDeRol_SoloSuperAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "user-2", entity.RoleUser)
	uc := usecase.NewUserUseCase(repo)

	newRole := entity.RoleAdmin
	_, err := uc.Update(context.Background(), adminActor, "user-2", dto.UpdateUserRequest{Role: &newRole})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cambiar roles requiere SUPERADMIN")

	out, err := uc.Update(context.Background(), superActor, "user-2", dto.UpdateUserRequest{Role: &newRole})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}
