// Package auth implementa el login del operador de planta. No hay tabla de
// usuarios: las credenciales viven en la configuración y el hash es bcrypt.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ksyee/vietnam-mes-simple/internal/application/dto"
	"github.com/ksyee/vietnam-mes-simple/internal/domain"
	"github.com/ksyee/vietnam-mes-simple/pkg/jwt"
)

// Credentials credenciales configuradas del operador.
type Credentials struct {
	Username     string
	PasswordHash string // bcrypt; vacío deshabilita el login
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación.
type UseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(creds Credentials, jwtCfg JWTConfig) *UseCase {
	return &UseCase{creds: creds, jwtCfg: jwtCfg}
}

// Login verifica usuario/password contra las credenciales configuradas y
// emite un JWT. Devuelve ErrUnauthorized ante cualquier credencial mala,
// sin distinguir usuario inexistente de password incorrecto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if uc.creds.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Username != uc.creds.Username {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Username:  in.Username,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
