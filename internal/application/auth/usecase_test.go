package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ksyee/vietnam-mes-simple/internal/application/auth"
	"github.com/ksyee/vietnam-mes-simple/internal/application/dto"
	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/pkg/jwt"
)

func newTestUseCase(t *testing.T, password string) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewUseCase(
		auth.Credentials{Username: "admin", PasswordHash: string(hash)},
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"},
	)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newTestUseCase(t, "mes1234")

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "mes1234"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	assert.Equal(t, 3600, out.ExpiresIn)

	username, err := jwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username, "el token emitido debe ser verificable")
}

func TestLogin_CredencialesMalas(t *testing.T) {
	uc := newTestUseCase(t, "mes1234")

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "mes1234"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente y password malo responden igual")
}

func TestLogin_DeshabilitadoSinHash(t *testing.T) {
	uc := auth.NewUseCase(
		auth.Credentials{Username: "admin"},
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "test"},
	)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "cualquiera"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
