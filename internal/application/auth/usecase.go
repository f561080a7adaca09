package auth

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/projectflow/internal/application/dto"
	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
	"github.com/tu-usuario/projectflow/pkg/jwt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// JWTConfig configuración para generación del par de tokens.
type JWTConfig struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// AuthUseCase casos de uso de autenticación: registro, login, rotación de
// refresh tokens y logout. El set de refresh tokens vigentes vive en el
// TokenStore inyectado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, jwtCfg: jwtCfg}
}

// Register crea un usuario: valida los campos, hashea password con bcrypt y
// persiste. El autoregistro solo admite los roles team_member y
// project_manager; cualquier otro valor cae a team_member. Devuelve
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if firstName == "" || lastName == "" || email == "" {
		return nil, fmt.Errorf("%w: first_name, last_name y email son requeridos", domain.ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}
	existing, _ := uc.userRepo.GetByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := entity.RoleTeamMember
	if in.Role == entity.RoleProjectManager {
		role = entity.RoleProjectManager
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.issueTokens(user)
}

// Login verifica email/password y genera el par de tokens. Usuario inexistente
// y password incorrecto devuelven el mismo ErrUnauthorized para no filtrar
// qué emails existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueTokens(user)
}

// Refresh rota el par de tokens: el refresh token entrante debe estar en el
// store Y pasar la verificación de firma/vigencia. El token viejo se invalida
// antes de registrar el nuevo, de modo que un token rotado no se puede reusar.
func (uc *AuthUseCase) Refresh(refreshToken string) (*dto.TokenPairResponse, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidToken
	}
	ok, err := uc.tokens.Has(refreshToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	claims, err := jwt.Parse(uc.jwtCfg.RefreshSecret, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}

	access, newRefresh, err := uc.generatePair(user)
	if err != nil {
		return nil, err
	}
	if err := uc.tokens.Remove(refreshToken); err != nil {
		return nil, err
	}
	if err := uc.tokens.Add(newRefresh, time.Now().Add(uc.jwtCfg.RefreshTTL)); err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: newRefresh}, nil
}

// Logout elimina el refresh token del store. Idempotente: un token ya ausente
// no es un error.
func (uc *AuthUseCase) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return uc.tokens.Remove(refreshToken)
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.NewUserResponse(user), nil
}

func (uc *AuthUseCase) issueTokens(user *entity.User) (*dto.AuthResponse, error) {
	access, refresh, err := uc.generatePair(user)
	if err != nil {
		return nil, err
	}
	if err := uc.tokens.Add(refresh, time.Now().Add(uc.jwtCfg.RefreshTTL)); err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:         *dto.NewUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (uc *AuthUseCase) generatePair(user *entity.User) (access, refresh string, err error) {
	access, err = jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.Generate(uc.jwtCfg.RefreshSecret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
