package auth

import (
	"context"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/pkg/jwt"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// minPasswordLen longitud mínima aceptada antes de consultar el store.
const minPasswordLen = 6

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autenticación por credenciales: valida la forma, busca el
// usuario y compara el password contra el hash bcrypt.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Authorize verifica las credenciales y devuelve usuario + token de sesión.
// Credenciales malformadas se rechazan sin tocar el store. Email desconocido y
// password incorrecto devuelven el mismo error: el caller no puede enumerar
// usuarios.
func (uc *AuthUseCase) Authorize(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if !validCredentialShape(in) {
		uc.log.Warn().Msg("intento de login con credenciales malformadas")
		return nil, domain.ErrInvalidCredentials
	}

	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "auth.Authorize").Msg("error de base de datos")
		return nil, domain.ErrDataAccess
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetUser busca un usuario por email exacto. Devuelve (nil, nil) si no existe.
func (uc *AuthUseCase) GetUser(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "auth.GetUser").Msg("error de base de datos")
		return nil, domain.ErrDataAccess
	}
	return toUserResponse(user), nil
}

// validCredentialShape exige email sintácticamente válido y password de al
// menos 6 caracteres.
func validCredentialShape(in dto.LoginRequest) bool {
	if len(in.Password) < minPasswordLen {
		return false
	}
	addr, err := mail.ParseAddress(in.Email)
	return err == nil && addr.Address == in.Email
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
