package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/prevenapp/inspecciones-api/internal/application/auth"
	"github.com/prevenapp/inspecciones-api/internal/application/dto"
	"github.com/prevenapp/inspecciones-api/internal/domain"
	"github.com/prevenapp/inspecciones-api/internal/domain/entity"
	pkgjwt "github.com/prevenapp/inspecciones-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.Email] = u
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}
func (f *fakeUserRepo) Update(_ context.Context, _ *entity.User) error  { return nil }
func (f *fakeUserRepo) Delete(_ context.Context, _ string) error        { return nil }
func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error)  { return nil, nil }

const testSecret = "secret-para-tests"

func buildAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-correcta"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"ana@prevenapp.cl": {
			ID:           "u1",
			Name:         "Ana Soto",
			Email:        "ana@prevenapp.cl",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    time.Now(),
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inspecciones-test",
	})
}

func TestLogin_Correcto_EntregaTokenConClaims(t *testing.T) {
	uc := buildAuthUC(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@prevenapp.cl", Password: "clave-correcta",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@prevenapp.cl", out.User.Email)
	assert.Empty(t, out.User.CompanyID)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLogin_PasswordIncorrecta_Unauthorized(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@prevenapp.cl", Password: "clave-mala",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_MismoError(t *testing.T) {
	uc := buildAuthUC(t)

	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@prevenapp.cl", Password: "da-igual",
	})
	_, errBadPass := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@prevenapp.cl", Password: "clave-mala",
	})

	// El mismo error en ambos casos: no se filtra qué cuentas existen.
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser, errBadPass)
}
