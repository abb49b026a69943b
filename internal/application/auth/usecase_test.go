package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturacion-api/internal/application/auth"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

type fakeUserRepo struct {
	users map[string]*entity.User
	err   error

	lookups int // veces que se consultó el store
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.Email] = u
	return nil
}

var jwtCfg = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "facturacion-api"}

func seededRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeUserRepo{users: map[string]*entity.User{
		"user@nextmail.com": {
			ID:       "u-1",
			Name:     "User",
			Email:    "user@nextmail.com",
			Password: string(hash),
		},
	}}
}

func TestAuthorize_CredencialesCorrectas(t *testing.T) {
	repo := seededRepo(t)
	uc := auth.NewAuthUseCase(repo, jwtCfg, logger.Nop())

	resp, err := uc.Authorize(context.Background(), dto.LoginRequest{
		Email: "user@nextmail.com", Password: "123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
	assert.Equal(t, "user@nextmail.com", resp.User.Email)
}

func TestAuthorize_PasswordIncorrecto(t *testing.T) {
	uc := auth.NewAuthUseCase(seededRepo(t), jwtCfg, logger.Nop())

	_, err := uc.Authorize(context.Background(), dto.LoginRequest{
		Email: "user@nextmail.com", Password: "equivocado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Email desconocido y password incorrecto devuelven el mismo error: el caller
// no puede distinguir cuál de los dos falló.
func TestAuthorize_EmailDesconocido_MismoError(t *testing.T) {
	uc := auth.NewAuthUseCase(seededRepo(t), jwtCfg, logger.Nop())

	_, errUnknown := uc.Authorize(context.Background(), dto.LoginRequest{
		Email: "nadie@nextmail.com", Password: "123456",
	})
	_, errWrongPass := uc.Authorize(context.Background(), dto.LoginRequest{
		Email: "user@nextmail.com", Password: "equivocado",
	})
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

// Credenciales malformadas se rechazan sin consultar el store.
func TestAuthorize_MalformadasNoTocanElStore(t *testing.T) {
	repo := seededRepo(t)
	uc := auth.NewAuthUseCase(repo, jwtCfg, logger.Nop())

	cases := []dto.LoginRequest{
		{Email: "sin-arroba", Password: "123456"},
		{Email: "", Password: "123456"},
		{Email: "user@nextmail.com", Password: "corto"},
		{Email: "user@nextmail.com", Password: ""},
		{Email: "Nombre <user@nextmail.com>", Password: "123456"},
	}
	for _, in := range cases {
		_, err := uc.Authorize(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "email=%q", in.Email)
	}
	assert.Zero(t, repo.lookups, "el store no debe consultarse con credenciales malformadas")
}

func TestAuthorize_FalloDelStore(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("conn refused")}
	uc := auth.NewAuthUseCase(repo, jwtCfg, logger.Nop())

	_, err := uc.Authorize(context.Background(), dto.LoginRequest{
		Email: "user@nextmail.com", Password: "123456",
	})
	assert.ErrorIs(t, err, domain.ErrDataAccess)
}

func TestGetUser_Existente(t *testing.T) {
	uc := auth.NewAuthUseCase(seededRepo(t), jwtCfg, logger.Nop())

	user, err := uc.GetUser(context.Background(), "user@nextmail.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
}

// GetUser con email inexistente devuelve (nil, nil), no error.
func TestGetUser_Inexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(seededRepo(t), jwtCfg, logger.Nop())

	user, err := uc.GetUser(context.Background(), "nadie@nextmail.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}
